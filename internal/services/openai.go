package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

type openAIService struct {
	apiKey    string
	baseURL   string
	modelName string
	client    *http.Client
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Error *chatAPIError `json:"error,omitempty"`
}

type chatAPIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// NewOpenAIService talks to any OpenAI-compatible chat completions endpoint.
// Per-call deadlines come from GenerationRequest.Timeout, so the HTTP client
// itself carries none.
func NewOpenAIService(apiKey, baseURL, modelName string) LLMService {
	return &openAIService{
		apiKey:    apiKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		modelName: modelName,
		client:    &http.Client{},
	}
}

func (o *openAIService) Provider() string { return "openai" }

func (o *openAIService) Model() string { return o.modelName }

// GenerateText implements LLMService.
func (o *openAIService) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	callCtx, cancel := withTimeout(ctx, req.Timeout)
	defer cancel()

	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	body, err := json.Marshal(chatRequest{
		Model:       o.modelName,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(httpReq)
	if err != nil {
		log.Printf("❌ OpenAI API error (%s): %v\n", req.Operation, err)
		return "", fmt.Errorf("error making request: %w", deadlineError(callCtx, err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", deadlineError(callCtx, err))
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("OpenAI API status %d: %w", resp.StatusCode, ErrModelQuota)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI API error: status %d, body: %s", resp.StatusCode, truncate(string(respBody), 300))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", errors.Join(ErrMalformedOutput, fmt.Errorf("error unmarshaling response: %w", err))
	}

	if parsed.Error != nil {
		if parsed.Error.Code == "insufficient_quota" || parsed.Error.Code == "rate_limit_exceeded" {
			return "", fmt.Errorf("OpenAI API error %s: %w", parsed.Error.Message, ErrModelQuota)
		}
		return "", fmt.Errorf("OpenAI API error: %s", parsed.Error.Message)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no choices returned: %w", ErrEmptyResponse)
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}

	return content, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
