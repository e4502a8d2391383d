package handler

import (
	"fmt"
	"time"

	"quizforge/internal/config"
	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthHandler serves liveness, dependency health and model discovery.
type HealthHandler struct {
	cfg        *config.Config
	db         *gorm.DB
	cache      domain.Cache
	completion domain.CompletionClient
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(cfg *config.Config, db *gorm.DB, cache domain.Cache, completion domain.CompletionClient) *HealthHandler {
	return &HealthHandler{cfg: cfg, db: db, cache: cache, completion: completion}
}

// Health godoc
// @Summary Server health
// @Description Reports server status and whether the completion API is configured
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":          "OK",
		"message":         "Server is running",
		"environment":     h.cfg.Env,
		"groq_configured": h.completion.Configured(),
	})
}

// DatabaseHealth godoc
// @Summary Dependency health
// @Description Pings the database and cache
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/database [get]
func (h *HealthHandler) DatabaseHealth(c *fiber.Ctx) error {
	status := fiber.Map{
		"database": "OK",
		"cache":    "OK",
	}
	healthy := true

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Context())
	}
	if err != nil {
		logger.Get().Error("database health check failed", zap.Error(err))
		status["database"] = fmt.Sprintf("unavailable: %v", err)
		healthy = false
	}

	if err := h.cache.Ping(c.Context()); err != nil {
		logger.Get().Error("cache health check failed", zap.Error(err))
		status["cache"] = fmt.Sprintf("unavailable: %v", err)
		healthy = false
	}

	status["checked_at"] = time.Now().Format(time.RFC3339)
	if !healthy {
		return c.Status(fiber.StatusServiceUnavailable).JSON(status)
	}
	return c.JSON(status)
}

// Models godoc
// @Summary List available models
// @Description Returns the model allow-list with the recommended default
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /models [get]
func (h *HealthHandler) Models(c *fiber.Ctx) error {
	models := h.completion.Models()
	descriptions := make(map[string]string, len(models))
	for name, id := range models {
		descriptions[id] = fmt.Sprintf("Groq %s model", name)
	}

	return c.JSON(fiber.Map{
		"models":             models,
		"recommended":        h.completion.DefaultModel(),
		"current_default":    h.completion.DefaultModel(),
		"description":        "All models are free to use with rate limits",
		"model_descriptions": descriptions,
	})
}
