package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler exposes liveness/readiness probes.
type HealthHandler struct{}

// NewHealthHandler constructs handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Live reports process liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// Ready reports readiness.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "ready"})
}
