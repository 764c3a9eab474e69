package handler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/angulartv/regisstros/internal/models"
	"github.com/angulartv/regisstros/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BackupHandler is the flat-file backup endpoint. It sits outside the
// session gate and is keyed by its own API key, so an external cron can
// hit it without a login flow.
type BackupHandler struct {
	DB         *gorm.DB
	APIKey     string
	EncryptKey string
	Dir        string
}

func NewBackupHandler(db *gorm.DB, apiKey, encryptKey, dir string) *BackupHandler {
	return &BackupHandler{
		DB:         db,
		APIKey:     apiKey,
		EncryptKey: encryptKey,
		Dir:        dir,
	}
}

func (h *BackupHandler) filePath() string {
	return filepath.Join(h.Dir, "backup.bin")
}

func (h *BackupHandler) authorized(c *gin.Context) bool {
	provided := c.GetHeader("X-API-Key")
	if provided == "" {
		provided = c.Query("key")
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(h.APIKey)) == 1
}

type backupData struct {
	Created time.Time      `json:"created"`
	Entries []models.Entry `json:"entries"`
}

// Create snapshots the entries table into an encrypted file,
// overwriting the previous snapshot.
func (h *BackupHandler) Create(c *gin.Context) {
	if !h.authorized(c) {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid key")
		return
	}

	var entries []models.Entry
	if err := h.DB.Order("date ASC, id ASC").Find(&entries).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	raw, err := json.Marshal(backupData{Created: time.Now(), Entries: entries})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "serialize failed")
		return
	}

	enc, err := util.EncryptAES(h.EncryptKey, raw)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "encrypt failed")
		return
	}

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create backup dir failed")
		return
	}
	if err := os.WriteFile(h.filePath(), enc, 0o600); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "write backup failed")
		return
	}

	util.Success(c, util.Response{
		"entries_count": len(entries),
	})
}

// Get decrypts the latest snapshot and returns its contents.
func (h *BackupHandler) Get(c *gin.Context) {
	if !h.authorized(c) {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid key")
		return
	}

	enc, err := os.ReadFile(h.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "no backup yet")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "read backup failed")
		}
		return
	}

	raw, err := util.DecryptAES(h.EncryptKey, enc)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "decrypt failed")
		return
	}

	var data backupData
	if err := json.Unmarshal(raw, &data); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "parse backup failed")
		return
	}

	util.Success(c, util.Response{
		"created": data.Created,
		"entries": data.Entries,
	})
}
