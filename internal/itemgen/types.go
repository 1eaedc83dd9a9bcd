package itemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/assessgen/internal/items"
)

// Count bounds for a single request.
const (
	MinCount = 5
	MaxCount = 30
)

// Request is one generation job.
type Request struct {
	// Topic is the free-text subject the items are about.
	Topic string

	// Count is the exact number of items wanted, in [MinCount, MaxCount].
	Count int

	Kind items.Kind
}

// Validate checks the request preconditions. It returns an error wrapping
// ErrInvalidRequest on violation.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return fmt.Errorf("%w: topic is empty", ErrInvalidRequest)
	}
	if r.Count < MinCount || r.Count > MaxCount {
		return fmt.Errorf("%w: count %d outside [%d, %d]", ErrInvalidRequest, r.Count, MinCount, MaxCount)
	}
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidRequest, r.Kind)
	}
	return nil
}

// RawItem is one parsed but unvalidated item. Values keep their decoded
// JSON types, so a string "true" in a boolean slot is still visible to
// validation.
type RawItem map[string]any

// Field names used in RawItem.
const (
	FieldQuestion      = "question"
	FieldOptions       = "options"
	FieldCorrectAnswer = "correct_answer"
	FieldSentence      = "sentence"
	FieldBlankWord     = "blank_word"
	FieldHint          = "hint"
	FieldStatement     = "statement"
	FieldAnswer        = "answer"
	FieldExplanation   = "explanation"
)

// String returns the trimmed string value of key, or "" when the key is
// missing or not a string.
func (r RawItem) String(key string) string {
	s, _ := r[key].(string)
	return strings.TrimSpace(s)
}

// Options returns the MCQ option map with lower-cased letters. Non-string
// option values are dropped.
func (r RawItem) Options() map[string]string {
	out := map[string]string{}
	switch opts := r[FieldOptions].(type) {
	case map[string]any:
		for k, v := range opts {
			if s, ok := v.(string); ok {
				out[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(s)
			}
		}
	case map[string]string:
		for k, v := range opts {
			out[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
		}
	}
	return out
}

// PrimaryText returns the field that identifies the item for its kind.
func (r RawItem) PrimaryText(kind items.Kind) string {
	switch kind {
	case items.KindMCQ:
		return r.String(FieldQuestion)
	case items.KindFillBlank:
		return r.String(FieldSentence)
	case items.KindTrueFalse:
		return r.String(FieldStatement)
	}
	return ""
}

// toItem converts a validated RawItem into its typed item.
func toItem(r RawItem, kind items.Kind) items.Item {
	switch kind {
	case items.KindMCQ:
		return items.NewMCQ(r.String(FieldQuestion), r.Options(), r.String(FieldCorrectAnswer))
	case items.KindFillBlank:
		return items.NewFillBlank(r.String(FieldSentence), r.String(FieldBlankWord), r.String(FieldHint))
	default:
		answer, _ := r[FieldAnswer].(bool)
		return items.NewTrueFalse(r.String(FieldStatement), answer, r.String(FieldExplanation))
	}
}

// Source tells where a result's items came from.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Result is the outcome of a generation request.
type Result struct {
	Items  []items.Item
	Source Source

	// Attempts is the number of LLM attempts made. Zero when no provider
	// was configured.
	Attempts int

	// Failures holds the error of each failed attempt, in order.
	Failures []error
}
