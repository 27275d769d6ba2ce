package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(apiKey, modelName string) (LLMService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

func (g *geminiService) Provider() string { return "gemini" }

func (g *geminiService) Model() string { return g.modelName }

// GenerateText implements LLMService.
func (g *geminiService) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	callCtx, cancel := withTimeout(ctx, req.Timeout)
	defer cancel()

	temperature := req.Temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(callCtx, g.modelName, genai.Text(req.Prompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error (%s): %v\n", req.Operation, err)
		return "", fmt.Errorf("failed to generate text: %w", classifyGeminiError(callCtx, err))
	}

	if resp == nil {
		return "", fmt.Errorf("nil response: %w", ErrEmptyResponse)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

func classifyGeminiError(callCtx context.Context, err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && isQuotaStatus(apiErr.Code, apiErr.Status) {
		return errors.Join(ErrModelQuota, err)
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil && isQuotaStatus(apiErrPtr.Code, apiErrPtr.Status) {
		return errors.Join(ErrModelQuota, err)
	}

	return deadlineError(callCtx, err)
}

func isQuotaStatus(code int, status string) bool {
	return code == http.StatusTooManyRequests || status == "RESOURCE_EXHAUSTED"
}
