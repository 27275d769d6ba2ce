package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/project-interview/internal/models"
	"alfredoptarigan/project-interview/internal/services"
)

const missingInterviewMsg = "Missing interview data"

type ReportHandler struct {
	synthesizer services.ReportSynthesizer
	metrics     *services.Metrics
}

func NewReportHandler(synthesizer services.ReportSynthesizer, metrics *services.Metrics) *ReportHandler {
	return &ReportHandler{
		synthesizer: synthesizer,
		metrics:     metrics,
	}
}

// HandleGenerateReport handles POST /generate-report
func (h *ReportHandler) HandleGenerateReport(c *fiber.Ctx) error {
	var req models.GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": missingInterviewMsg,
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": missingInterviewMsg,
		})
	}

	report, err := h.synthesizer.GenerateReport(c.UserContext(), req.Questions, req.Answers)
	if err != nil {
		return respondError(c, err, missingInterviewMsg, "Failed to generate report")
	}

	h.metrics.IncrementReportsGenerated()

	return c.JSON(models.GenerateReportResponse{
		Report:  report.Text,
		Verdict: string(report.Verdict),
	})
}
