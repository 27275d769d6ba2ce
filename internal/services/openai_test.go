package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIService_GenerateText(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  hello  "},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	llm := NewOpenAIService("test-key", server.URL+"/", "gpt-test")
	text, err := llm.GenerateText(context.Background(), GenerationRequest{
		Operation:   ModeAskQuestion,
		System:      "be brief",
		Prompt:      "hi",
		Temperature: 0.2,
		MaxTokens:   300,
		Timeout:     time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, "hello", text)
	assert.Equal(t, "gpt-test", got.Model)
	assert.Equal(t, 300, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
}

func TestOpenAIService_QuotaStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down","code":"rate_limit_exceeded"}}`))
	}))
	defer server.Close()

	_, err := NewOpenAIService("k", server.URL, "m").GenerateText(context.Background(), GenerationRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrModelQuota)
	assert.Equal(t, "quota", ErrorKind(err))
}

func TestOpenAIService_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	_, err := NewOpenAIService("k", server.URL, "m").GenerateText(context.Background(), GenerationRequest{
		Prompt:  "hi",
		Timeout: 50 * time.Millisecond,
	})
	assert.ErrorIs(t, err, ErrModelTimeout)
	assert.Equal(t, "timeout", ErrorKind(err))
}

func TestOpenAIService_CallerCancelIsNotTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := NewOpenAIService("k", server.URL, "m").GenerateText(ctx, GenerationRequest{Prompt: "hi", Timeout: time.Minute})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrModelTimeout)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenAIService_EmptyAndMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"no choices", `{"choices":[]}`, ErrEmptyResponse},
		{"blank content", `{"choices":[{"message":{"role":"assistant","content":"   "}}]}`, ErrEmptyResponse},
		{"not json", `<html>oops</html>`, ErrMalformedOutput},
		{"quota in body", `{"error":{"message":"out of credit","code":"insufficient_quota"}}`, ErrModelQuota},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewOpenAIService("k", server.URL, "m").GenerateText(context.Background(), GenerationRequest{Prompt: "hi"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
