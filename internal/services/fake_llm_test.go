package services

import (
	"context"
	"sync"
)

// fakeLLM returns canned responses and records every request.
type fakeLLM struct {
	mu        sync.Mutex
	responses []string
	err       error
	requests  []GenerationRequest
}

func (f *fakeLLM) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", ErrEmptyResponse
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func (f *fakeLLM) Provider() string { return "fake" }

func (f *fakeLLM) Model() string { return "fake-model" }

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func defaultValidator() *ResponseValidator {
	return NewResponseValidator(QuestionPolicy{MinWords: 6, MinChars: 21})
}
