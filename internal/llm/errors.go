package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrRateLimit is returned when the host answers 429.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse is returned when structured output does not match the
// requested schema, or the completion has no text at all.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers network failures and 5xx answers.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "LLM provider unavailable"
	}
	return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrRequestRejected is a 4xx answer other than 429: a bad key, an unknown
// model or a malformed request. Repeating the call will not help.
type ErrRequestRejected struct {
	StatusCode int
	Err        error
}

func (e *ErrRequestRejected) Error() string {
	return fmt.Sprintf("LLM request rejected (HTTP %d): %v", e.StatusCode, e.Err)
}

func (e *ErrRequestRejected) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded is returned when structured output was cut off at
// the token limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// errorForStatus maps an HTTP status from a provider SDK error.
func errorForStatus(status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	case status >= 400 && status < 500:
		return &ErrRequestRejected{StatusCode: status, Err: err}
	default:
		return &ErrProviderUnavailable{Err: err}
	}
}

// ErrorClass names the failure category used in logs and events.
type ErrorClass string

const (
	ClassNone      ErrorClass = ""
	ClassNetwork   ErrorClass = "network"
	ClassTimeout   ErrorClass = "timeout"
	ClassRateLimit ErrorClass = "rate_limit"
	ClassRejected  ErrorClass = "rejected"
	ClassInvalid   ErrorClass = "invalid_response"
	ClassTruncated ErrorClass = "truncated"
)

// Classify returns the category of err. Unknown errors count as network
// failures.
func Classify(err error) ErrorClass {
	var (
		rl       *ErrRateLimit
		rejected *ErrRequestRejected
		invalid  *ErrInvalidResponse
		trunc    *ErrMaxTokensExceeded
	)
	switch {
	case err == nil:
		return ClassNone
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ClassTimeout
	case errors.As(err, &rl):
		return ClassRateLimit
	case errors.As(err, &rejected):
		return ClassRejected
	case errors.As(err, &invalid):
		return ClassInvalid
	case errors.As(err, &trunc):
		return ClassTruncated
	default:
		return ClassNetwork
	}
}
