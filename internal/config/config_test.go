package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_REQUEST_TIMEOUT", "")
	t.Setenv("LLM_GENERATION_TIMEOUT", "")
	t.Setenv("AUDIT_DB_ENABLED", "")
	t.Setenv("INTERVIEW_POLICY_FILE", "")

	cfg := Load()

	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, 15*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, 60*time.Second, cfg.LLM.GenerationTimeout)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, DefaultInterviewPolicy(), cfg.Interview)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", ProviderOpenAI)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_REQUEST_TIMEOUT", "5s")
	t.Setenv("LLM_GENERATION_TIMEOUT", "not-a-duration")
	t.Setenv("AUDIT_DB_ENABLED", "true")
	t.Setenv("INTERVIEW_POLICY_FILE", writePolicy(t, "interview:\n  answer_time_limit: 30\n"))

	cfg := Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, 5*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, 60*time.Second, cfg.LLM.GenerationTimeout)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, 30, cfg.Interview.AnswerTimeLimit)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			LLM: LLMConfig{
				Provider:          ProviderGemini,
				GeminiAPIKey:      "key",
				RequestTimeout:    time.Second,
				GenerationTimeout: time.Second,
			},
			Storage:   StorageConfig{MaxFileSize: 1024},
			Interview: DefaultInterviewPolicy(),
		}
	}

	require.NoError(t, base().Validate())

	missingKey := base()
	missingKey.LLM.GeminiAPIKey = ""
	assert.Error(t, missingKey.Validate())

	unknown := base()
	unknown.LLM.Provider = "llama"
	assert.Error(t, unknown.Validate())

	noTimeout := base()
	noTimeout.LLM.GenerationTimeout = 0
	assert.Error(t, noTimeout.Validate())

	badPolicy := base()
	badPolicy.Interview.MinQuestionWords = 0
	assert.Error(t, badPolicy.Validate())
}
