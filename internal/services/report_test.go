package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/project-interview/internal/models"
)

const sampleReport = `## Overall Summary
The candidate explained Atlas clearly.

## Strengths
- Clear ownership of the scheduler design

## Areas for Improvement
- Testing strategy was vague

## Detailed Feedback
Q1 was answered well.

## Final Verdict
**good.**`

func TestGenerateReport_CanonicalVerdict(t *testing.T) {
	llm := &fakeLLM{responses: []string{sampleReport}}
	synth := NewReportSynthesizer(llm, "(No answer)", time.Minute)

	report, err := synth.GenerateReport(context.Background(),
		[]string{"How did you design Atlas?"},
		[]string{"I used a priority queue."})
	require.NoError(t, err)

	assert.Equal(t, models.VerdictGood, report.Verdict)
	assert.True(t, strings.HasSuffix(report.Text, "Final Verdict:\nGood"), report.Text)
	assert.Contains(t, report.Text, "## Strengths")
	assert.Equal(t, 1, strings.Count(report.Text, "Final Verdict"))
}

func TestGenerateReport_PromptPairsQuestionsAndAnswers(t *testing.T) {
	llm := &fakeLLM{responses: []string{"Summary.\n\nFinal Verdict: Average"}}
	synth := NewReportSynthesizer(llm, "(No answer)", time.Minute)

	_, err := synth.GenerateReport(context.Background(),
		[]string{"Q one?", "Q two?"},
		[]string{"first answer", "   "})
	require.NoError(t, err)

	prompt := llm.requests[0].Prompt
	assert.Contains(t, prompt, "Q1: Q one?\nA1: first answer")
	assert.Contains(t, prompt, "Q2: Q two?\nA2: (No answer)")
	assert.Equal(t, ModeReport, llm.requests[0].Operation)
}

func TestGenerateReport_InvalidInput(t *testing.T) {
	llm := &fakeLLM{responses: []string{sampleReport}}
	synth := NewReportSynthesizer(llm, "(No answer)", time.Minute)

	tests := []struct {
		name      string
		questions []string
		answers   []string
	}{
		{"no questions", nil, nil},
		{"length mismatch", []string{"a?", "b?"}, []string{"x"}},
		{"blank question", []string{"  "}, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := synth.GenerateReport(context.Background(), tt.questions, tt.answers)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Zero(t, llm.calls())
}

func TestCanonicalizeReport(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    models.Verdict
		wantErr bool
	}{
		{"inline value", "Summary.\n\nFinal Verdict: Below Average", models.VerdictBelowAverage, false},
		{"bold heading", "Summary.\n\n**Final Verdict:** Average.", models.VerdictAverage, false},
		{"value on next line", "Summary.\n\nFinal Verdict:\n\n  good  ", models.VerdictGood, false},
		{"extra whitespace", "Summary.\nFinal Verdict: below   average", models.VerdictBelowAverage, false},
		{"last section wins", "Final Verdict: Good\n\nRevised.\n\nFinal Verdict: Average", models.VerdictAverage, false},
		{"fenced", "```markdown\nSummary.\n\nFinal Verdict: Good\n```", models.VerdictGood, false},
		{"outside closed set", "Summary.\n\nFinal Verdict: Excellent", "", true},
		{"missing section", "Summary only, no verdict.", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := canonicalizeReport(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidVerdict)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Verdict)
			assert.True(t, strings.HasSuffix(report.Text, "Final Verdict:\n"+string(tt.want)), report.Text)
		})
	}
}
