package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/project-interview/internal/models"
	"alfredoptarigan/project-interview/internal/services"
)

const invalidResumeMsg = "Invalid resume text."

type QuestionsHandler struct {
	pipeline services.QuestionPipeline
	metrics  *services.Metrics
}

func NewQuestionsHandler(pipeline services.QuestionPipeline, metrics *services.Metrics) *QuestionsHandler {
	return &QuestionsHandler{
		pipeline: pipeline,
		metrics:  metrics,
	}
}

// HandleProjectQuestions handles POST /get-project-questions
func (h *QuestionsHandler) HandleProjectQuestions(c *fiber.Ctx) error {
	var req models.ProjectQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": invalidResumeMsg,
		})
	}

	set, err := h.pipeline.GenerateQuestions(c.UserContext(), req.ResumeText)
	if err != nil {
		return respondError(c, err, invalidResumeMsg, "Failed to generate project-based questions")
	}

	h.metrics.IncrementQuestionSets()

	return c.JSON(models.ProjectQuestionsResponse{Questions: set.Slice()})
}
