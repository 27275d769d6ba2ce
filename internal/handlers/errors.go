package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/project-interview/internal/services"
)

var validate = validator.New()

// StatusFor maps a service error onto the HTTP status clients rely on.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrModelTimeout):
		return fiber.StatusRequestTimeout
	case errors.Is(err, services.ErrModelQuota):
		return fiber.StatusTooManyRequests
	case errors.Is(err, services.ErrNoProjects):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. invalidMsg is shown for
// client-fault errors and failureMsg for everything not classified.
func respondError(c *fiber.Ctx, err error, invalidMsg, failureMsg string) error {
	status := StatusFor(err)

	msg := failureMsg
	switch status {
	case fiber.StatusBadRequest:
		msg = invalidMsg
	case fiber.StatusRequestTimeout:
		msg = "Request timed out"
	case fiber.StatusTooManyRequests:
		msg = "Model quota exceeded. Try again later."
	case fiber.StatusUnprocessableEntity:
		msg = "No projects found in resume"
	default:
		log.Printf("❌ %s: %v\n", failureMsg, err)
	}

	return c.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}
