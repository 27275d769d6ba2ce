package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskQuestion(t *testing.T) {
	llm := &fakeLLM{responses: []string{"She led the Atlas rewrite."}}
	assistant := NewAssistantService(llm, 15*time.Second)

	answer, err := assistant.AskQuestion(context.Background(), "Who led Atlas?", sampleResume)
	require.NoError(t, err)
	assert.Equal(t, "She led the Atlas rewrite.", answer)

	req := llm.requests[0]
	assert.Equal(t, ModeAskQuestion, req.Operation)
	assert.NotEmpty(t, req.System)
	assert.Equal(t, 15*time.Second, req.Timeout)
	assert.Contains(t, req.Prompt, "Question:\nWho led Atlas?")
}

func TestAskQuestion_MissingInput(t *testing.T) {
	llm := &fakeLLM{}
	assistant := NewAssistantService(llm, time.Second)

	_, err := assistant.AskQuestion(context.Background(), "", sampleResume)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = assistant.AskQuestion(context.Background(), "Who?", " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, llm.calls())
}

func TestFollowUp_StripsQuotesAndFences(t *testing.T) {
	llm := &fakeLLM{responses: []string{"```\n\"How did you measure the latency improvement?\"\n```"}}
	assistant := NewAssistantService(llm, time.Second)

	next, err := assistant.FollowUp(context.Background(), sampleResume, "How did you design Atlas?", "With a priority queue.")
	require.NoError(t, err)
	assert.Equal(t, "How did you measure the latency improvement?", next)
	assert.Equal(t, ModeFollowUp, llm.requests[0].Operation)
}

func TestFollowUp_MissingAnswer(t *testing.T) {
	assistant := NewAssistantService(&fakeLLM{}, time.Second)

	_, err := assistant.FollowUp(context.Background(), sampleResume, "How did you design Atlas?", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
