package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/project-interview/internal/models"
	"alfredoptarigan/project-interview/internal/services"
)

type AssistantHandler struct {
	assistant services.AssistantService
}

func NewAssistantHandler(assistant services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// HandleAskQuestion handles POST /ask-question
func (h *AssistantHandler) HandleAskQuestion(c *fiber.Ctx) error {
	const missing = "Missing question or context"

	var req models.AskQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": missing})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": missing})
	}

	answer, err := h.assistant.AskQuestion(c.UserContext(), req.Question, req.Context)
	if err != nil {
		return respondError(c, err, missing, "Failed to generate answer")
	}

	return c.JSON(models.AskQuestionResponse{Answer: answer})
}

// HandleFollowUp handles POST /follow-up-question
func (h *AssistantHandler) HandleFollowUp(c *fiber.Ctx) error {
	const missing = "Missing data"

	var req models.FollowUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": missing})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": missing})
	}

	next, err := h.assistant.FollowUp(c.UserContext(), req.ResumeText, req.Question, req.Answer)
	if err != nil {
		return respondError(c, err, missing, "Failed to generate follow-up question")
	}

	return c.JSON(models.FollowUpResponse{NextQuestion: next})
}
