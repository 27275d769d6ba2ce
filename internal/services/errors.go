package services

import (
	"context"
	"errors"
)

var (
	// ErrInvalidInput marks missing or malformed caller input.
	ErrInvalidInput = errors.New("invalid input")

	ErrModelTimeout  = errors.New("model request timed out")
	ErrModelQuota    = errors.New("model quota exceeded")
	ErrEmptyResponse = errors.New("empty model response")

	ErrNoProjects            = errors.New("no projects found in resume")
	ErrMalformedOutput       = errors.New("malformed model output")
	ErrInsufficientQuestions = errors.New("insufficient valid questions")
	ErrInvalidVerdict        = errors.New("report verdict is not one of Below Average, Average, Good")
)

// ErrorKind names the error class for audit records and metrics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrModelTimeout):
		return "timeout"
	case errors.Is(err, ErrModelQuota):
		return "quota"
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, ErrNoProjects):
		return "no_projects"
	case errors.Is(err, ErrInsufficientQuestions):
		return "insufficient_questions"
	case errors.Is(err, ErrMalformedOutput):
		return "malformed_output"
	case errors.Is(err, ErrInvalidVerdict):
		return "invalid_verdict"
	default:
		return "internal"
	}
}

// deadlineError turns a deadline expiry of callCtx into ErrModelTimeout.
// Cancellation by the caller is left as is.
func deadlineError(callCtx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return errors.Join(ErrModelTimeout, err)
	}
	return err
}
