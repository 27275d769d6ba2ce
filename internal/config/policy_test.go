package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePolicy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "interview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadInterviewPolicy_PartialFileKeepsDefaults(t *testing.T) {
	path := writePolicy(t, `
interview:
  answer_time_limit: 90
  no_answer_placeholder: "(skipped)"
`)

	policy, err := LoadInterviewPolicy(path)
	require.NoError(t, err)

	assert.Equal(t, 90, policy.AnswerTimeLimit)
	assert.Equal(t, "(skipped)", policy.NoAnswerPlaceholder)
	assert.Equal(t, 50, policy.MinResumeChars)
	assert.Equal(t, 6, policy.MinQuestionWords)
	assert.Equal(t, 21, policy.MinQuestionChars)
}

func TestLoadInterviewPolicy_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero time limit", "interview:\n  answer_time_limit: 0\n"},
		{"empty placeholder", "interview:\n  no_answer_placeholder: \"\"\n"},
		{"bad yaml", "interview: [unterminated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadInterviewPolicy(writePolicy(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadInterviewPolicy_MissingFile(t *testing.T) {
	_, err := LoadInterviewPolicy(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultInterviewPolicyIsValid(t *testing.T) {
	assert.NoError(t, DefaultInterviewPolicy().Validate())
}
