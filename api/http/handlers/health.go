package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"ai-resume-backend/pkg/health"
)

// HealthHandler serves liveness, readiness and health probes.
type HealthHandler struct {
	svc   health.UseCase
	start time.Time
}

func NewHealthHandler(svc health.UseCase) *HealthHandler {
	return &HealthHandler{svc: svc, start: time.Now()}
}

// Health: overall state with dependency detail and process uptime.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	healthy, deps := h.svc.Status(ctx)

	status := "healthy"
	code := fiber.StatusOK
	if !healthy {
		status = "unhealthy"
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status":       status,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"uptime":       int(time.Since(h.start).Seconds()),
		"dependencies": deps,
	})
}

// Ready: readiness check with DB ping.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 1*time.Second)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"ready":  false,
			"reason": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ready": true})
}

// Live: basic liveness check.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"alive": true})
}
