package models

import (
	"time"

	"github.com/google/uuid"
)

type ModelCallStatus string

const (
	CallSucceeded ModelCallStatus = "succeeded"
	CallFailed    ModelCallStatus = "failed"
)

// ModelCall is the audit record of one outbound model request. It stores
// metadata only, never prompt or résumé content.
type ModelCall struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Operation     string          `gorm:"type:text;not null" json:"operation"`
	Provider      string          `gorm:"type:text;not null" json:"provider"`
	Model         string          `gorm:"type:text" json:"model"`
	Status        ModelCallStatus `gorm:"type:text;not null" json:"status"`
	ErrorKind     string          `gorm:"type:text" json:"error_kind,omitempty"`
	DurationMs    int64           `json:"duration_ms"`
	PromptChars   int             `json:"prompt_chars"`
	ResponseChars int             `json:"response_chars"`
	CreatedAt     time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ModelCall) TableName() string {
	return "model_calls"
}
