package handler

import (
	"context"
	"time"

	"beverage-kg/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck is one dependency reported by /health. Only required checks
// turn the response into a 503.
type HealthCheck struct {
	Name     string
	Pinger   Pinger
	Required bool
}

type HealthHandler struct {
	checks  []HealthCheck
	timeout time.Duration
}

type healthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

func NewHealthHandler(checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 2 * time.Second}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	res := healthResponse{Status: "ok", Components: map[string]string{}}
	healthy := true
	for _, chk := range h.checks {
		if chk.Pinger == nil {
			res.Components[chk.Name] = "disabled"
			continue
		}
		if err := chk.Pinger.Ping(ctx); err != nil {
			res.Components[chk.Name] = "down"
			if chk.Required {
				healthy = false
			} else if res.Status == "ok" {
				res.Status = "degraded"
			}
			continue
		}
		res.Components[chk.Name] = "up"
	}

	if !healthy {
		res.Status = "down"
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, res)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
