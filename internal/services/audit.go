package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/project-interview/internal/models"
	"alfredoptarigan/project-interview/internal/repositories"
)

// auditedLLM records every call in the metrics and, when a repository is
// configured, as a ModelCall row.
type auditedLLM struct {
	next    LLMService
	metrics *Metrics
	repo    repositories.ModelCallRepository
}

// NewAuditedLLM wraps next. repo may be nil when the audit database is off.
func NewAuditedLLM(next LLMService, metrics *Metrics, repo repositories.ModelCallRepository) LLMService {
	return &auditedLLM{next: next, metrics: metrics, repo: repo}
}

func (a *auditedLLM) Provider() string { return a.next.Provider() }

func (a *auditedLLM) Model() string { return a.next.Model() }

func (a *auditedLLM) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	started := time.Now()
	text, err := a.next.GenerateText(ctx, req)
	kind := ErrorKind(err)

	a.metrics.RecordModelCall(kind)

	if a.repo != nil {
		status := models.CallSucceeded
		if err != nil {
			status = models.CallFailed
		}
		call := &models.ModelCall{
			ID:            uuid.New(),
			Operation:     string(req.Operation),
			Provider:      a.next.Provider(),
			Model:         a.next.Model(),
			Status:        status,
			ErrorKind:     kind,
			DurationMs:    time.Since(started).Milliseconds(),
			PromptChars:   len(req.System) + len(req.Prompt),
			ResponseChars: len(text),
			CreatedAt:     time.Now(),
		}
		if repoErr := a.repo.Create(call); repoErr != nil {
			log.Printf("⚠️  Failed to record model call: %v\n", repoErr)
		}
	}

	return text, err
}
