package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/project-interview/internal/repositories"
	"alfredoptarigan/project-interview/internal/services"
)

type StatusHandler struct {
	metrics   *services.Metrics
	callsRepo repositories.ModelCallRepository
}

// NewStatusHandler serves metrics and the model-call audit log. callsRepo
// is nil when the audit database is disabled.
func NewStatusHandler(metrics *services.Metrics, callsRepo repositories.ModelCallRepository) *StatusHandler {
	return &StatusHandler{
		metrics:   metrics,
		callsRepo: callsRepo,
	}
}

// HandleMetrics handles GET /metrics
func (h *StatusHandler) HandleMetrics(c *fiber.Ctx) error {
	return c.JSON(h.metrics.Snapshot())
}

// HandleModelCalls handles GET /model-calls
func (h *StatusHandler) HandleModelCalls(c *fiber.Ctx) error {
	if h.callsRepo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Model call audit is disabled",
		})
	}

	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 200 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "limit must be between 1 and 200",
		})
	}

	calls, err := h.callsRepo.FindRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load model calls",
		})
	}

	return c.JSON(fiber.Map{
		"calls": calls,
	})
}
