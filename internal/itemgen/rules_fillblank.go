package itemgen

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/assessgen/internal/items"
)

const minBlankWordLen = 3

// badBigrams are word pairs that only appear when a blank word was
// substituted into the wrong slot. Matched space-padded, lower-cased.
var badBigrams = []string{" a a ", " an a ", " the the ", " is are ", " was were "}

// FillBlankValidator checks fill-in-the-blank items: one blank marker,
// an acceptable blank word and a grammatical filled sentence.
type FillBlankValidator struct{}

func (v *FillBlankValidator) Name() string { return "fill-blank" }

func (v *FillBlankValidator) Validate(batch []RawItem, _ Request) *ValidationError {
	for i, it := range batch {
		sentence := it.String(FieldSentence)
		word := it.String(FieldBlankWord)

		if n := strings.Count(sentence, items.BlankMarker); n != 1 {
			return v.fail(i, ReasonNoBlankMarker, fmt.Sprintf("sentence has %d blank markers, want 1", n))
		}
		if items.IsForbiddenBlankWord(word) {
			return v.fail(i, ReasonForbiddenBlankWord, fmt.Sprintf("blank word %q is a function word", word))
		}
		if utf8.RuneCountInString(word) < minBlankWordLen {
			return v.fail(i, ReasonTooShort, fmt.Sprintf("blank word %q is too short", word))
		}
		if msg := grammarProblem(sentence, word); msg != "" {
			return v.fail(i, ReasonUngrammatical, msg)
		}
	}
	return nil
}

func (v *FillBlankValidator) fail(i int, reason Reason, msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Reason: reason, Index: i, Message: msg, Retryable: true}
}

// grammarProblem substitutes word into sentence and returns a description
// of the first problem found, or "".
func grammarProblem(sentence, word string) string {
	filled := strings.TrimSpace(strings.Replace(sentence, items.BlankMarker, word, 1))

	if strings.Contains(filled, "  ") {
		return "filled sentence contains a double space"
	}
	if !strings.HasSuffix(filled, ".") && !strings.HasSuffix(filled, "!") && !strings.HasSuffix(filled, "?") {
		return "filled sentence does not end with punctuation"
	}
	padded := " " + strings.ToLower(filled) + " "
	for _, bg := range badBigrams {
		if strings.Contains(padded, bg) {
			return fmt.Sprintf("filled sentence contains %q", strings.TrimSpace(bg))
		}
	}
	return ""
}
