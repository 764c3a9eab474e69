package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/angulartv/regisstros/internal/ledger"
	"github.com/angulartv/regisstros/internal/models"
	"github.com/angulartv/regisstros/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EntryHandler owns the entry CRUD endpoints.
type EntryHandler struct {
	DB *gorm.DB
}

func NewEntryHandler(db *gorm.DB) *EntryHandler {
	return &EntryHandler{DB: db}
}

// entryReq is the loose wire form shared by create and update. Hours
// tolerates numbers and strings alike; unparseable values become 0.
// Note the hours>0 rule for extra/use/familiar lives in the clients
// only, so a zero-hour entry of those types is persisted as sent.
type entryReq struct {
	Date         string       `json:"date"`
	Hours        ledger.Hours `json:"hours"`
	Type         string       `json:"type"`
	Note         string       `json:"note"`
	RequiresMemo bool         `json:"requiresMemo"`
	MemoDone     bool         `json:"memoDone"`
}

func (r entryReq) normalize() (ledger.Entry, error) {
	return ledger.Draft{
		Date:         r.Date,
		Hours:        ledger.FormatHours(float64(r.Hours)),
		Type:         r.Type,
		Note:         r.Note,
		RequiresMemo: r.RequiresMemo,
		MemoDone:     r.MemoDone,
	}.Normalize()
}

// ListEntries returns the full collection, newest date first.
func (h *EntryHandler) ListEntries(c *gin.Context) {
	var rows []models.Entry
	if err := h.DB.Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	items := make([]ledger.Entry, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].ToLedger())
	}

	util.Success(c, util.Response{
		"items": items,
	})
}

// CreateEntry stores a new entry. A missing date is the only rejected
// input; every other field is coerced to its default.
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req entryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "bad request body")
		return
	}

	le, err := req.normalize()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	var row models.Entry
	row.FromLedger(le)
	if err := h.DB.Create(&row).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed")
		return
	}

	util.Success(c, util.Response{
		"entry": row.ToLedger(),
	})
}

// UpdateEntry replaces the full field set of an existing entry and
// returns the stored result.
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req entryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "bad request body")
		return
	}

	le, err := req.normalize()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	var row models.Entry
	if err := h.DB.First(&row, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "entry not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	row.FromLedger(le)
	if err := h.DB.Save(&row).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed")
		return
	}

	util.Success(c, util.Response{
		"entry": row.ToLedger(),
	})
}

// DeleteEntry removes an entry permanently. There is no soft delete and
// no undo.
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	if err := h.DB.Delete(&models.Entry{}, id).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed")
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}

// MonthlyStats returns the balance cards plus per-day buckets for one
// month (?month=YYYY-MM, current month by default).
func (h *EntryHandler) MonthlyStats(c *gin.Context) {
	monthStr := c.Query("month")
	if monthStr == "" {
		monthStr = time.Now().Format("2006-01")
	}
	t, err := time.Parse("2006-01", monthStr)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "month must be YYYY-MM")
		return
	}

	var rows []models.Entry
	if err := h.DB.Order("date ASC, id ASC").Find(&rows).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	entries := make([]ledger.Entry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].ToLedger())
	}

	type dayStat struct {
		Day     int            `json:"day"`
		Date    string         `json:"date"`
		Entries []ledger.Entry `json:"entries"`
		Totals  ledger.Totals  `json:"totals"`
	}

	var days []dayStat
	for d, bucket := range ledger.Month(entries, t.Year(), t.Month()) {
		if len(bucket) == 0 {
			continue
		}
		days = append(days, dayStat{
			Day:     d,
			Date:    ledger.DayKey{Year: t.Year(), Month: t.Month(), Day: d}.String(),
			Entries: bucket,
			Totals:  ledger.Sum(bucket),
		})
	}

	util.Success(c, util.Response{
		"month":  monthStr,
		"days":   days,
		"totals": ledger.Sum(entries),
	})
}
