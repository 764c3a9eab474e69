package handler

import (
	"net/http"
	"time"

	"github.com/angulartv/regisstros/internal/middleware"
	"github.com/angulartv/regisstros/internal/models"
	"github.com/angulartv/regisstros/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthHandler implements the single shared-secret login.
type AuthHandler struct {
	DB        *gorm.DB
	Password  string // plaintext or pbkdf2 salt$hash
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthHandler(db *gorm.DB, password, jwtSecret string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		DB:        db,
		Password:  password,
		JWTSecret: jwtSecret,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

type loginReq struct {
	Password string `json:"password" binding:"required"`
}

// Login checks the shared secret and, on success, opens a session and
// returns its JWT (also set as a cookie for browser clients).
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "password required")
		return
	}

	if !util.CheckSecret(req.Password, h.Password) {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "wrong password")
		return
	}

	session := models.Session{
		ID:        uuid.New().String(),
		ExpiresAt: time.Now().Add(h.TokenTTL),
	}
	if err := h.DB.Create(&session).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create session failed")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, session.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "generate token failed")
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(h.TokenTTL.Seconds()), "/", "", false, true)
	util.Success(c, util.Response{
		"token": token,
	})
}

// Logout revokes the current session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, ok := c.Get("sessionID"); ok {
		h.DB.Model(&models.Session{}).
			Where("id = ?", id).
			Update("revoked", true)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	util.Success(c, util.Response{
		"message": "logged out",
	})
}
