package handler

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hamzahey/algorithm-ai/internal/config"
	"github.com/hamzahey/algorithm-ai/internal/db"
	"github.com/hamzahey/algorithm-ai/internal/model"
)

type HealthHandler struct {
	store     *db.Postgres
	cfg       config.ServerConfig
	startTime time.Time
}

func NewHealthHandler(store *db.Postgres, cfg config.ServerConfig) *HealthHandler {
	return &HealthHandler{store: store, cfg: cfg, startTime: time.Now()}
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	database := model.HealthDatabase{Connected: true}
	if err := h.store.Pool.Ping(c.Request.Context()); err != nil {
		database.Connected = false
		database.Error = err.Error()
	}

	status := "healthy"
	if !database.Connected {
		status = "unhealthy"
	}

	c.JSON(http.StatusOK, model.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    int64(time.Since(h.startTime).Seconds()),
		Database:  database,
		Environment: model.HealthEnvironment{
			Env:            h.cfg.Env,
			Port:           h.cfg.Port,
			HasDatabaseURL: os.Getenv("DATABASE_URL") != "",
			HasJWTSecret:   os.Getenv("JWT_SECRET") != "",
		},
	})
}
