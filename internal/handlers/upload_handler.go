package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/project-interview/internal/models"
	"alfredoptarigan/project-interview/internal/services"
)

type UploadHandler struct {
	uploadService services.UploadService
	parser        services.DocumentParserService
	metrics       *services.Metrics
}

func NewUploadHandler(
	uploadService services.UploadService,
	parser services.DocumentParserService,
	metrics *services.Metrics,
) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		parser:        parser,
		metrics:       metrics,
	}
}

// HandleUpload handles POST /upload-resume
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume uploaded",
		})
	}

	data, err := h.uploadService.ReadFile(file)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFileType) || errors.Is(err, services.ErrFileTooLarge) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	text, err := h.parser.ExtractText(file.Filename, data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to parse resume",
		})
	}

	h.metrics.IncrementResumesParsed()

	return c.JSON(models.UploadResumeResponse{ResumeText: text})
}
