package itemgen

import (
	"errors"
	"fmt"

	"github.com/abhisek/assessgen/internal/items"
)

// ErrInvalidRequest is returned for requests that fail preconditions. It is
// the only error Orchestrator.Generate returns.
var ErrInvalidRequest = errors.New("invalid generation request")

// errAttemptPanicked marks an LLM attempt that panicked and was recovered.
var errAttemptPanicked = errors.New("generation attempt panicked")

// ParseReason classifies a parse failure.
type ParseReason string

const (
	ParseNoContent    ParseReason = "no_content"
	ParseInvalidJSON  ParseReason = "invalid_json"
	ParseNotSequence  ParseReason = "not_sequence"
	ParseInsufficient ParseReason = "insufficient"
)

// ParseError reports completion text that could not be turned into enough
// raw items.
type ParseError struct {
	Kind   items.Kind
	Reason ParseReason
	Found  int
	Want   int
	Err    error
}

func (e *ParseError) Error() string {
	switch e.Reason {
	case ParseInsufficient:
		return fmt.Sprintf("parse %s: %s (found %d, want %d)", e.Kind, e.Reason, e.Found, e.Want)
	default:
		if e.Err != nil {
			return fmt.Sprintf("parse %s: %s: %v", e.Kind, e.Reason, e.Err)
		}
		return fmt.Sprintf("parse %s: %s", e.Kind, e.Reason)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }
