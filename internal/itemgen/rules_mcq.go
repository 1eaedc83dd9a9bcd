package itemgen

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/assessgen/internal/items"
)

// minTextLen is the minimum length of a question, statement or explanation.
const minTextLen = 10

// placeholderPhrases mark options the model left as stand-ins.
var placeholderPhrases = []string{"option", "answer", "first", "second"}

// MCQValidator checks multiple-choice questions: question length, generic
// "What is {topic}?" prompts, option quality and the answer letter.
type MCQValidator struct{}

func (v *MCQValidator) Name() string { return "mcq" }

func (v *MCQValidator) Validate(batch []RawItem, req Request) *ValidationError {
	generic := genericQuestions(req.Topic)

	for i, it := range batch {
		q := it.String(FieldQuestion)
		if utf8.RuneCountInString(q) < minTextLen {
			return v.fail(i, ReasonTooShort, fmt.Sprintf("question %q is too short", q))
		}
		if slices.Contains(generic, items.Normalize(q)) {
			return v.fail(i, ReasonGenericQuestion, fmt.Sprintf("question %q only restates the topic", q))
		}

		opts := it.Options()
		for _, l := range items.OptionLetters {
			text, ok := opts[l]
			if !ok {
				return v.fail(i, ReasonMissingOption, fmt.Sprintf("option %s is missing", l))
			}
			if utf8.RuneCountInString(text) <= 1 {
				return v.fail(i, ReasonTooShort, fmt.Sprintf("option %s %q is too short", l, text))
			}
			if isPlaceholder(text) {
				return v.fail(i, ReasonPlaceholderOption, fmt.Sprintf("option %s %q is a placeholder", l, text))
			}
		}

		correct := strings.ToLower(it.String(FieldCorrectAnswer))
		if !slices.Contains(items.OptionLetters, correct) {
			return v.fail(i, ReasonInvalidCorrectAnswer, fmt.Sprintf("correct answer %q is not one of a-d", correct))
		}
	}
	return nil
}

func (v *MCQValidator) fail(i int, reason Reason, msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Reason: reason, Index: i, Message: msg, Retryable: true}
}

// genericQuestions returns the normalized forms of questions that merely
// ask for the topic's definition.
func genericQuestions(topic string) []string {
	return []string{
		items.Normalize("what is " + topic),
		items.Normalize("what are " + topic),
		items.Normalize("define " + topic),
	}
}

func isPlaceholder(option string) bool {
	lower := strings.ToLower(option)
	for _, p := range placeholderPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
