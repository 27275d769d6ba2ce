package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/project-interview/internal/models"
)

type memoryCallRepo struct {
	mu    sync.Mutex
	calls []models.ModelCall
	err   error
}

func (r *memoryCallRepo) Create(call *models.ModelCall) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, *call)
	return nil
}

func (r *memoryCallRepo) FindRecent(limit int) ([]models.ModelCall, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > len(r.calls) {
		limit = len(r.calls)
	}
	return append([]models.ModelCall(nil), r.calls[:limit]...), nil
}

func TestAuditedLLM_RecordsCalls(t *testing.T) {
	metrics := NewMetrics()
	repo := &memoryCallRepo{}
	inner := &fakeLLM{responses: []string{"answer"}}
	llm := NewAuditedLLM(inner, metrics, repo)

	text, err := llm.GenerateText(context.Background(), GenerationRequest{Operation: ModeAskQuestion, System: "sys", Prompt: "prompt"})
	require.NoError(t, err)
	assert.Equal(t, "answer", text)

	inner.err = errors.Join(ErrModelTimeout, context.DeadlineExceeded)
	_, err = llm.GenerateText(context.Background(), GenerationRequest{Operation: ModeReport, Prompt: "p"})
	require.ErrorIs(t, err, ErrModelTimeout)

	snap := metrics.Snapshot()
	assert.EqualValues(t, 2, snap.ModelCallsTotal)
	assert.EqualValues(t, 1, snap.ModelCallsFailed)
	assert.EqualValues(t, 1, snap.ModelTimeouts)
	assert.Zero(t, snap.ModelQuotaExceeded)

	require.Len(t, repo.calls, 2)
	assert.Equal(t, "ask-question", repo.calls[0].Operation)
	assert.Equal(t, models.CallSucceeded, repo.calls[0].Status)
	assert.Equal(t, len("sys")+len("prompt"), repo.calls[0].PromptChars)
	assert.Equal(t, len("answer"), repo.calls[0].ResponseChars)
	assert.Equal(t, models.CallFailed, repo.calls[1].Status)
	assert.Equal(t, "timeout", repo.calls[1].ErrorKind)
	assert.Equal(t, "fake", repo.calls[1].Provider)
}

func TestAuditedLLM_RepoFailureDoesNotFailCall(t *testing.T) {
	repo := &memoryCallRepo{err: errors.New("db down")}
	llm := NewAuditedLLM(&fakeLLM{responses: []string{"ok"}}, NewMetrics(), repo)

	text, err := llm.GenerateText(context.Background(), GenerationRequest{Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestAuditedLLM_WithoutRepo(t *testing.T) {
	metrics := NewMetrics()
	llm := NewAuditedLLM(&fakeLLM{err: ErrModelQuota}, metrics, nil)

	_, err := llm.GenerateText(context.Background(), GenerationRequest{Prompt: "p"})
	assert.ErrorIs(t, err, ErrModelQuota)
	assert.EqualValues(t, 1, metrics.Snapshot().ModelQuotaExceeded)
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "", ErrorKind(nil))
	assert.Equal(t, "no_projects", ErrorKind(ErrNoProjects))
	assert.Equal(t, "invalid_verdict", ErrorKind(ErrInvalidVerdict))
	assert.Equal(t, "internal", ErrorKind(errors.New("boom")))
}
