package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// HandleHealth reports liveness plus the current database connectivity.
// The db field flips only when connectivity actually changes.
func (h *HealthHandler) HandleHealth(ctx *gin.Context) {
	dbStatus := "disconnected"
	if h.db != nil {
		if sqlDB, err := h.db.DB(); err == nil {
			pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), time.Second)
			defer cancel()
			if err := sqlDB.PingContext(pingCtx); err == nil {
				dbStatus = "connected"
			}
		}
	}

	ctx.JSON(200, gin.H{
		"status":    "ok",
		"db":        dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
