package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/project-interview/internal/config"
	"alfredoptarigan/project-interview/internal/handlers"
	"alfredoptarigan/project-interview/internal/repositories"
	"alfredoptarigan/project-interview/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Model-call audit store is optional; interview data is never stored
	var callsRepo repositories.ModelCallRepository
	if cfg.Database.Enabled {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}
		callsRepo = repositories.NewModelCallRepository(db)
		log.Println("✅ Model call audit enabled")
	}

	// Initialize LLM provider
	provider, err := services.NewLLMService(cfg.LLM)
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM provider: %v", err)
	}
	log.Printf("✅ LLM provider %s (%s) initialized successfully", provider.Provider(), provider.Model())

	metrics := services.NewMetrics()
	llm := services.NewAuditedLLM(provider, metrics, callsRepo)

	// Initialize services
	validator := services.NewResponseValidator(services.QuestionPolicyFrom(cfg.Interview))
	pipeline := services.NewQuestionPipeline(llm, validator, cfg.Interview.MinResumeChars, cfg.LLM.GenerationTimeout)
	synthesizer := services.NewReportSynthesizer(llm, cfg.Interview.NoAnswerPlaceholder, cfg.LLM.GenerationTimeout)
	assistant := services.NewAssistantService(llm, cfg.LLM.RequestTimeout)
	uploadService := services.NewUploadService(cfg.Storage.MaxFileSize)
	parser := services.NewDocumentParserService()
	log.Println("✅ Services initialized successfully")

	app := handlers.NewApp(handlers.Handlers{
		Upload:    handlers.NewUploadHandler(uploadService, parser, metrics),
		Questions: handlers.NewQuestionsHandler(pipeline, metrics),
		Assistant: handlers.NewAssistantHandler(assistant),
		Report:    handlers.NewReportHandler(synthesizer, metrics),
		Status:    handlers.NewStatusHandler(metrics, callsRepo),
	}, handlers.AppOptions{
		// Room for the multipart envelope around the largest allowed file.
		BodyLimit: int(cfg.Storage.MaxFileSize) + 1<<20,
		AccessLog: true,
	})
	log.Println("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
