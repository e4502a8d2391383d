package handler

import (
	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/middleware"
	"quizforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler serves the free-form completion endpoints.
type ChatHandler struct {
	service service.ChatService
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat godoc
// @Summary Single-message chat
// @Description Answers a single user message, continuing a session when one is given
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.Chat(c.Context(), req, middleware.UserIDFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Conversation godoc
// @Summary Chat with history
// @Description Answers against a caller-supplied message history
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ConversationRequest true "Conversation request"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /chat/conversation [post]
func (h *ChatHandler) Conversation(c *fiber.Ctx) error {
	var req dto.ConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.Conversation(c.Context(), req, middleware.UserIDFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
