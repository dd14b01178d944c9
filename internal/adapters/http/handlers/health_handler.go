package handlers

import (
	"context"
	"sort"
	"time"

	"vetcare-web/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports whether a dependency is usable
type HealthCheck func(ctx context.Context) error

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg    *config.Config
	checks map[string]HealthCheck
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{cfg: cfg, checks: checks}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := "ok"
	code := fiber.StatusOK
	results := fiber.Map{"app": "healthy"}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			results[name] = "unhealthy"
			status = "degraded"
			code = fiber.StatusServiceUnavailable
			continue
		}
		results[name] = "healthy"
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"mode":   h.cfg.AppMode,
		"store":  h.cfg.Store.Driver,
		"checks": results,
	})
}
