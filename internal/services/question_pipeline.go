package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"alfredoptarigan/project-interview/internal/models"
)

type QuestionPipeline interface {
	GenerateQuestions(ctx context.Context, resumeText string) (models.QuestionSet, error)
}

type questionPipeline struct {
	llm            LLMService
	promptBuilder  *PromptBuilder
	validator      *ResponseValidator
	minResumeChars int
	timeout        time.Duration
}

func NewQuestionPipeline(
	llm LLMService,
	validator *ResponseValidator,
	minResumeChars int,
	timeout time.Duration,
) QuestionPipeline {
	return &questionPipeline{
		llm:            llm,
		promptBuilder:  NewPromptBuilder(),
		validator:      validator,
		minResumeChars: minResumeChars,
		timeout:        timeout,
	}
}

// GenerateQuestions makes exactly one model call. It returns three
// validated questions or an error, never a partial set.
func (p *questionPipeline) GenerateQuestions(ctx context.Context, resumeText string) (models.QuestionSet, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" || utf8.RuneCountInString(resumeText) < p.minResumeChars {
		return models.QuestionSet{}, fmt.Errorf("%w: resume text must be at least %d characters", ErrInvalidInput, p.minResumeChars)
	}

	settings := SettingsFor(ModeProjectQuestions)
	prompt := p.promptBuilder.BuildProjectQuestionsPrompt(resumeText)

	log.Printf("📝 Project questions prompt length: %d characters", len(prompt))

	response, err := p.llm.GenerateText(ctx, GenerationRequest{
		Operation:   ModeProjectQuestions,
		Prompt:      prompt,
		Temperature: settings.Temperature,
		MaxTokens:   settings.MaxTokens,
		Timeout:     p.timeout,
	})
	if err != nil {
		return models.QuestionSet{}, fmt.Errorf("failed to generate project questions: %w", err)
	}

	parsed, err := p.validator.ParseQuestions(response)
	if err != nil {
		log.Printf("❌ Failed to parse project questions: %v", err)
		return models.QuestionSet{}, fmt.Errorf("failed to parse project questions: %w", err)
	}

	log.Printf("✅ Project questions generated (%s parse)", parsed.Stage)
	return parsed.Questions, nil
}
