package items

import (
	"fmt"
	"strings"
)

// Kind selects the item variant and, with it, the prompt, parser and
// validator used to produce it.
type Kind string

const (
	KindMCQ       Kind = "mcq"
	KindFillBlank Kind = "fill_blank"
	KindTrueFalse Kind = "true_false"
)

// AllKinds lists every supported kind in display order.
var AllKinds = []Kind{KindMCQ, KindFillBlank, KindTrueFalse}

// String returns the kind identifier.
func (k Kind) String() string { return string(k) }

// Label returns a human-readable name for the kind.
func (k Kind) Label() string {
	switch k {
	case KindMCQ:
		return "Multiple Choice"
	case KindFillBlank:
		return "Fill in the Blanks"
	case KindTrueFalse:
		return "True/False"
	default:
		return string(k)
	}
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindMCQ, KindFillBlank, KindTrueFalse:
		return true
	}
	return false
}

// ParseKind maps user input (flags, config files, stored rows) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mcq", "multiple_choice", "multiple-choice", "quiz":
		return KindMCQ, nil
	case "fill_blank", "fill-blank", "fillblank", "fill_blanks", "fill-blanks", "blanks":
		return KindFillBlank, nil
	case "true_false", "true-false", "truefalse", "tf":
		return KindTrueFalse, nil
	}
	return "", fmt.Errorf("unknown item kind %q", s)
}

// OptionLetters are the MCQ option keys in display order.
var OptionLetters = []string{"a", "b", "c", "d"}

// BlankMarker is the literal placeholder for the missing word in a
// fill-in-the-blank sentence.
const BlankMarker = "_____"

// Item is the common view over all item variants.
type Item interface {
	// Kind returns the variant of this item.
	Kind() Kind

	// PrimaryText is the question, sentence or statement shown to the learner.
	PrimaryText() string

	// KeyTerm is the uniqueness key within a batch: the lower-cased blank
	// word for fill-in-the-blank items, the primary-text fingerprint otherwise.
	KeyTerm() string
}

// MCQItem is a four-option multiple-choice question.
type MCQItem struct {
	Question string `json:"question"`

	// Options maps each letter in OptionLetters to its option text.
	Options map[string]string `json:"options"`

	// CorrectAnswer is one of OptionLetters.
	CorrectAnswer string `json:"correct_answer"`
}

// NewMCQ builds an MCQItem, copying options so the item owns its map.
func NewMCQ(question string, options map[string]string, correct string) MCQItem {
	opts := make(map[string]string, len(options))
	for k, v := range options {
		opts[strings.ToLower(k)] = v
	}
	return MCQItem{
		Question:      question,
		Options:       opts,
		CorrectAnswer: strings.ToLower(correct),
	}
}

func (q MCQItem) Kind() Kind          { return KindMCQ }
func (q MCQItem) PrimaryText() string { return q.Question }
func (q MCQItem) KeyTerm() string     { return Fingerprint(q.Question) }

// CorrectText returns the text of the correct option.
func (q MCQItem) CorrectText() string { return q.Options[q.CorrectAnswer] }

// FillBlankItem is a sentence with a single blanked-out term.
type FillBlankItem struct {
	Sentence  string `json:"sentence"`
	BlankWord string `json:"blank_word"`
	Hint      string `json:"hint"`
}

// NewFillBlank builds a FillBlankItem.
func NewFillBlank(sentence, blankWord, hint string) FillBlankItem {
	return FillBlankItem{Sentence: sentence, BlankWord: blankWord, Hint: hint}
}

func (f FillBlankItem) Kind() Kind          { return KindFillBlank }
func (f FillBlankItem) PrimaryText() string { return f.Sentence }
func (f FillBlankItem) KeyTerm() string     { return strings.ToLower(strings.TrimSpace(f.BlankWord)) }

// Filled returns the sentence with the blank word substituted in.
func (f FillBlankItem) Filled() string {
	return strings.Replace(f.Sentence, BlankMarker, f.BlankWord, 1)
}

// TrueFalseItem is a statement the learner judges as true or false.
type TrueFalseItem struct {
	Statement   string `json:"statement"`
	Answer      bool   `json:"answer"`
	Explanation string `json:"explanation"`
}

// NewTrueFalse builds a TrueFalseItem.
func NewTrueFalse(statement string, answer bool, explanation string) TrueFalseItem {
	return TrueFalseItem{Statement: statement, Answer: answer, Explanation: explanation}
}

func (t TrueFalseItem) Kind() Kind          { return KindTrueFalse }
func (t TrueFalseItem) PrimaryText() string { return t.Statement }
func (t TrueFalseItem) KeyTerm() string     { return Fingerprint(t.Statement) }

// AnswerLabel returns "True" or "False".
func (t TrueFalseItem) AnswerLabel() string {
	if t.Answer {
		return "True"
	}
	return "False"
}

// Balance counts true and false answers in a batch. Non true/false items
// are ignored.
func Balance(batch []Item) (trueCount, falseCount int) {
	for _, it := range batch {
		tf, ok := it.(TrueFalseItem)
		if !ok {
			continue
		}
		if tf.Answer {
			trueCount++
		} else {
			falseCount++
		}
	}
	return trueCount, falseCount
}

// Batch is an ordered list of items of a single kind.
type Batch []Item

// Kind returns the kind of the first item, or "" for an empty batch.
func (b Batch) Kind() Kind {
	if len(b) == 0 {
		return ""
	}
	return b[0].Kind()
}

func (b Batch) Len() int { return len(b) }

// TrueFalseBalance reports the true/false answer split.
func (b Batch) TrueFalseBalance() (trueCount, falseCount int) {
	return Balance(b)
}

// ForbiddenBlankWords are function words that may never be the answer to a
// fill-in-the-blank item.
var ForbiddenBlankWords = []string{
	"the", "a", "an", "is", "are", "was", "were", "in", "on", "at",
	"to", "for", "of", "and", "or", "but", "with", "by", "as",
}

// IsForbiddenBlankWord reports whether w, ignoring case and surrounding
// space, is in ForbiddenBlankWords.
func IsForbiddenBlankWord(w string) bool {
	w = strings.ToLower(strings.TrimSpace(w))
	for _, f := range ForbiddenBlankWords {
		if w == f {
			return true
		}
	}
	return false
}
