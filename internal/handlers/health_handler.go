package handlers

import (
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/database"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        "ok",
	}

	if err := database.Ping(h.db); err != nil {
		slog.Warn("health check database ping failed", "error", err)
		resp.Status = "degraded"
		resp.DB = "unhealthy"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}

	return c.JSON(resp)
}
