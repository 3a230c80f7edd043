package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthController ヘルスチェックに関するコントローラー
type HealthController struct {
	db        *gorm.DB
	startTime time.Time
}

// NewHealthController HealthControllerを作成
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{
		db:        db,
		startTime: time.Now(),
	}
}

// HealthStatus ヘルスステータスレスポンス
type HealthStatus struct {
	Status    string `json:"status"`
	DB        string `json:"db"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// Check ヘルスチェック
func (c *HealthController) Check(ctx *gin.Context) {
	dbStatus := "ok"
	if sqlDB, err := c.db.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "error"
	}

	ctx.JSON(http.StatusOK, &HealthStatus{
		Status:    "ok",
		DB:        dbStatus,
		Uptime:    time.Since(c.startTime).String(),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
