package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/project-interview/internal/services"
)

type Handlers struct {
	Upload    *UploadHandler
	Questions *QuestionsHandler
	Assistant *AssistantHandler
	Report    *ReportHandler
	Status    *StatusHandler
}

type AppOptions struct {
	BodyLimit int
	AccessLog bool
}

func NewApp(h Handlers, opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Project Interview API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		BodyLimit:    opts.BodyLimit,
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/upload-resume", h.Upload.HandleUpload)
	api.Post("/get-project-questions", h.Questions.HandleProjectQuestions)
	api.Post("/ask-question", h.Assistant.HandleAskQuestion)
	api.Post("/follow-up-question", h.Assistant.HandleFollowUp)
	api.Post("/generate-report", h.Report.HandleGenerateReport)
	api.Get("/metrics", h.Status.HandleMetrics)
	api.Get("/model-calls", h.Status.HandleModelCalls)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Project Interview API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload-resume",
				"POST /api/v1/get-project-questions",
				"POST /api/v1/ask-question",
				"POST /api/v1/follow-up-question",
				"POST /api/v1/generate-report",
				"GET /api/v1/metrics",
				"GET /api/v1/model-calls",
			},
		})
	})

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := err.Error()

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	// A body over BodyLimit is an oversized upload; report it like the
	// upload handler does.
	if code == fiber.StatusRequestEntityTooLarge {
		code = fiber.StatusBadRequest
		msg = services.ErrFileTooLarge.Error()
	}

	return c.Status(code).JSON(fiber.Map{
		"error": msg,
		"code":  code,
	})
}
