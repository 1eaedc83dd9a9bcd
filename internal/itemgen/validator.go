package itemgen

import (
	"fmt"

	"github.com/abhisek/assessgen/internal/items"
)

// Validator checks a parsed batch of raw items.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "fill-blank", "batch-uniqueness".
	Name() string

	// Validate checks the batch and returns nil if it passes.
	// Returns a ValidationError describing the first violation otherwise.
	Validate(batch []RawItem, req Request) *ValidationError
}

// Reason identifies the rule that rejected a batch.
type Reason string

const (
	ReasonMissingField         Reason = "missing_field"
	ReasonTooShort             Reason = "too_short"
	ReasonGenericQuestion      Reason = "generic_question"
	ReasonMissingOption        Reason = "missing_option"
	ReasonPlaceholderOption    Reason = "placeholder_option"
	ReasonInvalidCorrectAnswer Reason = "invalid_correct_answer"
	ReasonNoBlankMarker        Reason = "no_blank_marker"
	ReasonForbiddenBlankWord   Reason = "forbidden_blank_word"
	ReasonDuplicateBlankWord   Reason = "duplicate_blank_word"
	ReasonDuplicateText        Reason = "duplicate_text"
	ReasonUngrammatical        Reason = "ungrammatical"
	ReasonNonBooleanAnswer     Reason = "non_boolean_answer"
	ReasonUnbalanced           Reason = "unbalanced"
	ReasonCountMismatch        Reason = "count_mismatch"
)

// ValidationError describes why a batch failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Reason    Reason // Rule that rejected the batch
	Index     int    // Offending item, or -1 for batch-level failures
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("validator %q: item %d: %s (%s)", e.Validator, e.Index, e.Message, e.Reason)
	}
	return fmt.Sprintf("validator %q: %s (%s)", e.Validator, e.Message, e.Reason)
}

// DefaultValidators returns the standard chain for every kind.
func DefaultValidators() map[items.Kind][]Validator {
	return map[items.Kind][]Validator{
		items.KindMCQ: {
			&CountValidator{},
			&StructuralValidator{},
			&MCQValidator{},
			&BatchUniquenessValidator{},
		},
		items.KindFillBlank: {
			&CountValidator{},
			&StructuralValidator{},
			&FillBlankValidator{},
			&BatchUniquenessValidator{},
		},
		items.KindTrueFalse: {
			&CountValidator{},
			&StructuralValidator{},
			&TrueFalseValidator{},
			&BatchUniquenessValidator{},
		},
	}
}

// runChain executes validators in order and stops at the first failure.
func runChain(chain []Validator, batch []RawItem, req Request) *ValidationError {
	for _, v := range chain {
		if verr := v.Validate(batch, req); verr != nil {
			return verr
		}
	}
	return nil
}

// CountValidator rejects batches shorter than the requested count.
type CountValidator struct{}

func (v *CountValidator) Name() string { return "count" }

func (v *CountValidator) Validate(batch []RawItem, req Request) *ValidationError {
	if len(batch) < req.Count {
		return &ValidationError{
			Validator: v.Name(),
			Reason:    ReasonCountMismatch,
			Index:     -1,
			Message:   fmt.Sprintf("got %d items, want %d", len(batch), req.Count),
			Retryable: true,
		}
	}
	return nil
}

// StructuralValidator checks that every required field is present and
// non-empty for the request's kind.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(batch []RawItem, req Request) *ValidationError {
	for i, it := range batch {
		if field := missingField(it, req.Kind); field != "" {
			return &ValidationError{
				Validator: v.Name(),
				Reason:    ReasonMissingField,
				Index:     i,
				Message:   fmt.Sprintf("%s is missing or empty", field),
				Retryable: true,
			}
		}
	}
	return nil
}

// missingField returns the first required field that is absent or blank.
func missingField(it RawItem, kind items.Kind) string {
	var text []string
	switch kind {
	case items.KindMCQ:
		text = []string{FieldQuestion, FieldCorrectAnswer}
		switch it[FieldOptions].(type) {
		case map[string]any, map[string]string:
		default:
			return FieldOptions
		}
	case items.KindFillBlank:
		text = []string{FieldSentence, FieldBlankWord, FieldHint}
	case items.KindTrueFalse:
		text = []string{FieldStatement, FieldExplanation}
		// Type is checked by TrueFalseValidator.
		if it[FieldAnswer] == nil {
			return FieldAnswer
		}
	}
	for _, f := range text {
		if it.String(f) == "" {
			return f
		}
	}
	return ""
}
