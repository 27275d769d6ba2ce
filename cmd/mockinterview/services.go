package main

import (
	"fmt"
	"os"
	"path/filepath"

	"alfredoptarigan/project-interview/internal/config"
	"alfredoptarigan/project-interview/internal/services"
)

type interviewServices struct {
	cfg       *config.Config
	metrics   *services.Metrics
	upload    services.UploadService
	parser    services.DocumentParserService
	pipeline  services.QuestionPipeline
	reports   services.ReportSynthesizer
	assistant services.AssistantService
}

func loadServices(apiKey string) (*interviewServices, error) {
	cfg := config.Load()
	if apiKey != "" {
		switch cfg.LLM.Provider {
		case config.ProviderOpenAI:
			cfg.LLM.OpenAIAPIKey = apiKey
		default:
			cfg.LLM.GeminiAPIKey = apiKey
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	provider, err := services.NewLLMService(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}

	metrics := services.NewMetrics()
	llm := services.NewAuditedLLM(provider, metrics, nil)
	validator := services.NewResponseValidator(services.QuestionPolicyFrom(cfg.Interview))

	return &interviewServices{
		cfg:       cfg,
		metrics:   metrics,
		upload:    services.NewUploadService(cfg.Storage.MaxFileSize),
		parser:    services.NewDocumentParserService(),
		pipeline:  services.NewQuestionPipeline(llm, validator, cfg.Interview.MinResumeChars, cfg.LLM.GenerationTimeout),
		reports:   services.NewReportSynthesizer(llm, cfg.Interview.NoAnswerPlaceholder, cfg.LLM.GenerationTimeout),
		assistant: services.NewAssistantService(llm, cfg.LLM.RequestTimeout),
	}, nil
}

// readResume loads and parses a résumé file with the same checks the
// upload endpoint applies.
func (s *interviewServices) readResume(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open resume: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat resume: %w", err)
	}

	data, err := s.upload.Read(filepath.Base(path), info.Size(), f)
	if err != nil {
		return "", err
	}

	text, err := s.parser.ExtractText(filepath.Base(path), data)
	if err != nil {
		return "", fmt.Errorf("failed to parse resume: %w", err)
	}
	s.metrics.IncrementResumesParsed()

	return text, nil
}
