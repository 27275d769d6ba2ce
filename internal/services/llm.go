package services

import (
	"context"
	"fmt"
	"time"

	"alfredoptarigan/project-interview/internal/config"
)

// GenerationRequest is one provider-neutral completion call.
type GenerationRequest struct {
	Operation   PromptMode
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

type LLMService interface {
	GenerateText(ctx context.Context, req GenerationRequest) (string, error)
	Provider() string
	Model() string
}

// withTimeout bounds a model call. A zero timeout leaves ctx untouched.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// NewLLMService builds the configured provider.
func NewLLMService(cfg config.LLMConfig) (LLMService, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	case config.ProviderOpenAI:
		return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
