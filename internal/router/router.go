package router

import (
	"github.com/angulartv/regisstros/internal/config"
	"github.com/angulartv/regisstros/internal/handler"
	"github.com/angulartv/regisstros/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLog(), gin.Recovery())

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(db, cfg.Auth.Password, cfg.Auth.JWTSecret, cfg.Auth.ExpireHours)
	api.POST("/login", authHandler.Login)

	// backup sits outside the session gate, keyed by its own API key
	backupHandler := handler.NewBackupHandler(db, cfg.Backup.APIKey, cfg.Security.EncryptionKey, cfg.Backup.Dir)
	api.GET("/backup", backupHandler.Get)
	api.POST("/backup", backupHandler.Create)

	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret, db))

	protected.GET("/logout", authHandler.Logout)

	entryHandler := handler.NewEntryHandler(db)
	protected.GET("/entries", entryHandler.ListEntries)
	protected.POST("/entries", entryHandler.CreateEntry)
	protected.PUT("/entries/:id", entryHandler.UpdateEntry)
	protected.DELETE("/entries/:id", entryHandler.DeleteEntry)
	protected.GET("/stats/monthly", entryHandler.MonthlyStats)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
