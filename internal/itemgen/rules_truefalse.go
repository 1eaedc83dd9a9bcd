package itemgen

import (
	"fmt"
	"unicode/utf8"
)

// TrueFalseValidator checks that answers are booleans and that statement
// and explanation are long enough to be meaningful.
type TrueFalseValidator struct{}

func (v *TrueFalseValidator) Name() string { return "true-false" }

func (v *TrueFalseValidator) Validate(batch []RawItem, _ Request) *ValidationError {
	for i, it := range batch {
		if _, ok := it[FieldAnswer].(bool); !ok {
			return v.fail(i, ReasonNonBooleanAnswer, fmt.Sprintf("answer %v is not a boolean", it[FieldAnswer]))
		}
		if s := it.String(FieldStatement); utf8.RuneCountInString(s) < minTextLen {
			return v.fail(i, ReasonTooShort, fmt.Sprintf("statement %q is too short", s))
		}
		if e := it.String(FieldExplanation); utf8.RuneCountInString(e) < minTextLen {
			return v.fail(i, ReasonTooShort, fmt.Sprintf("explanation %q is too short", e))
		}
	}
	return nil
}

func (v *TrueFalseValidator) fail(i int, reason Reason, msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Reason: reason, Index: i, Message: msg, Retryable: true}
}
