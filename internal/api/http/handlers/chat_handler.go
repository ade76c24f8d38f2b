package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Ajeet990/myfacebook/internal/api/dto"
	"github.com/Ajeet990/myfacebook/internal/service"
	"github.com/Ajeet990/myfacebook/pkg/util"
)

// ChatHandler proxies prompts to the AI backend.
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler constructs handler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{service: chatService}
}

// Chat handles POST /api/gemini.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return util.NewValidationError("prompt is required", nil)
	}

	reply, err := h.service.Chat(c.Context(), req.Prompt)
	if err != nil {
		return util.NewInternalError(err)
	}
	return c.Status(http.StatusOK).JSON(dto.ChatResponse{Reply: reply})
}
