package services

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// AssistantService answers ad-hoc questions about a résumé and proposes
// follow-up questions during an interview.
type AssistantService interface {
	AskQuestion(ctx context.Context, question, resumeContext string) (string, error)
	FollowUp(ctx context.Context, resumeText, question, answer string) (string, error)
}

type assistantService struct {
	llm           LLMService
	promptBuilder *PromptBuilder
	timeout       time.Duration
}

func NewAssistantService(llm LLMService, timeout time.Duration) AssistantService {
	return &assistantService{
		llm:           llm,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
	}
}

func (a *assistantService) AskQuestion(ctx context.Context, question, resumeContext string) (string, error) {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(resumeContext) == "" {
		return "", fmt.Errorf("%w: missing question or context", ErrInvalidInput)
	}

	settings := SettingsFor(ModeAskQuestion)
	answer, err := a.llm.GenerateText(ctx, GenerationRequest{
		Operation:   ModeAskQuestion,
		System:      a.promptBuilder.BuildAskSystemPrompt(),
		Prompt:      a.promptBuilder.BuildAskPrompt(resumeContext, question),
		Temperature: settings.Temperature,
		MaxTokens:   settings.MaxTokens,
		Timeout:     a.timeout,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}

	return answer, nil
}

func (a *assistantService) FollowUp(ctx context.Context, resumeText, question, answer string) (string, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
		return "", fmt.Errorf("%w: missing data", ErrInvalidInput)
	}

	settings := SettingsFor(ModeFollowUp)
	next, err := a.llm.GenerateText(ctx, GenerationRequest{
		Operation:   ModeFollowUp,
		Prompt:      a.promptBuilder.BuildFollowUpPrompt(resumeText, question, answer),
		Temperature: settings.Temperature,
		MaxTokens:   settings.MaxTokens,
		Timeout:     a.timeout,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate follow-up question: %w", err)
	}

	next = strings.TrimSpace(stripCodeFences(next))
	next = strings.Trim(next, "\"“”")
	next = strings.TrimSpace(next)
	if next == "" {
		return "", ErrEmptyResponse
	}

	return next, nil
}
