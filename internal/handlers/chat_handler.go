package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-checker/internal/models"
	"alfredoptarigan/resume-checker/internal/services"
)

const (
	MsgInvalidPayload = "Invalid request payload"
	MsgMissingFields  = "Missing required fields"
)

type ChatHandler struct {
	analyzer services.ResumeAnalyzer
}

func NewChatHandler(analyzer services.ResumeAnalyzer) *ChatHandler {
	return &ChatHandler{analyzer: analyzer}
}

// HandleChat handles POST /api/chat
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: MsgInvalidPayload})
	}

	if strings.TrimSpace(req.Message) == "" || strings.TrimSpace(req.Analysis) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: MsgMissingFields})
	}

	response, err := h.analyzer.Chat(c.UserContext(), req.Analysis, req.Message)
	if err != nil {
		var genErr *services.GenerationError
		if errors.As(err, &genErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: genErr.Message})
		}
		return err
	}

	return c.JSON(models.ChatResponse{Response: response})
}
