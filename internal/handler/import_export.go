package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/angulartv/regisstros/internal/ledger"
	"github.com/angulartv/regisstros/internal/models"
	"github.com/angulartv/regisstros/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler serves spreadsheet downloads of the full ledger.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

func (h *ExportHandler) loadAll() ([]ledger.Entry, error) {
	var rows []models.Entry
	if err := h.DB.Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	entries := make([]ledger.Entry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].ToLedger())
	}
	return entries, nil
}

// ExportCSV streams the ledger through the CSV codec.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	entries, err := h.loadAll()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"registros_%s.csv\"",
		time.Now().Format("2006-01-02")))

	if err := ledger.WriteCSV(c.Writer, entries); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}

// ExportXLSX writes the ledger as a spreadsheet with the same columns
// and boolean tokens as the CSV export.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	entries, err := h.loadAll()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	f := excelize.NewFile()
	const sheetName = "Registros"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create sheet failed")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"id", "date", "hours", "type", "note", "requiresMemo", "memoDone"}
	for i, name := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, name)
	}

	for idx, e := range entries {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), e.Hours)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), string(e.Type))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), e.Note)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), yesNo(e.RequiresMemo))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), yesNo(e.MemoDone))
	}

	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "E", "E", 30)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"registros_%s.xlsx\"",
		time.Now().Format("2006-01-02")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
