package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"alfredoptarigan/project-interview/internal/models"
)

type ReportSynthesizer interface {
	GenerateReport(ctx context.Context, questions, answers []string) (*models.InterviewReport, error)
}

type reportSynthesizer struct {
	llm           LLMService
	promptBuilder *PromptBuilder
	placeholder   string
	timeout       time.Duration
}

func NewReportSynthesizer(llm LLMService, noAnswerPlaceholder string, timeout time.Duration) ReportSynthesizer {
	return &reportSynthesizer{
		llm:           llm,
		promptBuilder: NewPromptBuilder(),
		placeholder:   noAnswerPlaceholder,
		timeout:       timeout,
	}
}

func (r *reportSynthesizer) GenerateReport(ctx context.Context, questions, answers []string) (*models.InterviewReport, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidInput)
	}
	if len(questions) != len(answers) {
		return nil, fmt.Errorf("%w: %d questions but %d answers", ErrInvalidInput, len(questions), len(answers))
	}

	filled := make([]string, len(answers))
	for i, q := range questions {
		if strings.TrimSpace(q) == "" {
			return nil, fmt.Errorf("%w: question %d is empty", ErrInvalidInput, i+1)
		}
		filled[i] = strings.TrimSpace(answers[i])
		if filled[i] == "" {
			filled[i] = r.placeholder
		}
	}

	settings := SettingsFor(ModeReport)
	response, err := r.llm.GenerateText(ctx, GenerationRequest{
		Operation:   ModeReport,
		Prompt:      r.promptBuilder.BuildReportPrompt(questions, filled),
		Temperature: settings.Temperature,
		MaxTokens:   settings.MaxTokens,
		Timeout:     r.timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	report, err := canonicalizeReport(response)
	if err != nil {
		log.Printf("❌ Report rejected: %v", err)
		return nil, err
	}

	log.Printf("✅ Report generated with verdict %q", report.Verdict)
	return report, nil
}

var (
	verdictHeading  = regexp.MustCompile(`(?im)^[\s#*_>\d.)-]*final\s+verdict[\s*_]*:?[ \t*_]*(.*)$`)
	verdictNoise    = regexp.MustCompile(`[*_<>"'\[\]()` + "`" + `]`)
	verdictTrailing = regexp.MustCompile(`[\s.!]+$`)
)

// canonicalizeReport locates the last "Final Verdict" section, checks its
// value against the closed verdict set and rewrites the report so that the
// canonical literal is its final line.
func canonicalizeReport(text string) (*models.InterviewReport, error) {
	text = strings.TrimSpace(stripCodeFences(text))

	matches := verdictHeading.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: report has no Final Verdict section", ErrInvalidVerdict)
	}
	m := matches[len(matches)-1]

	value := strings.TrimSpace(text[m[2]:m[3]])
	if value == "" {
		for _, line := range strings.Split(text[m[1]:], "\n") {
			if line = strings.TrimSpace(line); line != "" {
				value = line
				break
			}
		}
	}

	value = verdictNoise.ReplaceAllString(value, "")
	value = strings.TrimLeft(strings.TrimSpace(value), "-:• ")
	value = verdictTrailing.ReplaceAllString(value, "")

	verdict, err := models.ParseVerdict(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVerdict, err)
	}

	body := strings.TrimSpace(text[:m[0]])
	final := fmt.Sprintf("Final Verdict:\n%s", verdict)
	if body != "" {
		final = body + "\n\n" + final
	}

	return &models.InterviewReport{Text: final, Verdict: verdict}, nil
}
