package util

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the response shape shared by most endpoints:
// {success, message, data}.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SendResponse writes an Envelope with the given status.
func SendResponse(c *fiber.Ctx, status int, env Envelope) error {
	return c.Status(status).JSON(env)
}

// RenderNotFound is the single 404 renderer. The request gate reuses it
// for role-based rejections so they are indistinguishable from an
// unknown route.
func RenderNotFound(c *fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(Envelope{
		Success: false,
		Message: "Not Found",
	})
}
