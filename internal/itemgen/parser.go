package itemgen

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/assessgen/internal/items"
	"github.com/abhisek/assessgen/internal/llm"
)

// ParserOptions tunes the free-text MCQ parser. The zero value is lenient.
type ParserOptions struct {
	// Strict raises the minimum question length from 10 to 30 characters
	// and the minimum option length from 2 to 3.
	Strict bool
}

var (
	codeFenceRe    = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)```")
	questionRe     = regexp.MustCompile(`^\d+[.):]?\s*(.+)$`)
	optionRe       = regexp.MustCompile(`^([a-dA-D])[.)]\s*(.+)$`)
	answerLineRe   = regexp.MustCompile(`^(?i:answer|correct|ans)\s*[:\-]\s*\(?([a-dA-D])`)
	markdownBoldRe = regexp.MustCompile(`\*\*`)
)

// ParseResponse extracts up to count raw items from completion text using
// lenient options.
func ParseResponse(raw string, count int, kind items.Kind) ([]RawItem, error) {
	return ParserOptions{}.Parse(raw, count, kind)
}

// Parse extracts up to count raw items from completion text. JSON kinds
// fail with reason insufficient when fewer than count objects are found;
// the MCQ text parser may return fewer than count items.
func (o ParserOptions) Parse(raw string, count int, kind items.Kind) ([]RawItem, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &ParseError{Kind: kind, Reason: ParseNoContent}
	}
	if kind == items.KindMCQ {
		return o.parseMCQ(raw, count)
	}
	return parseJSONItems(raw, count, kind)
}

func parseJSONItems(raw string, count int, kind items.Kind) ([]RawItem, error) {
	text := extractJSONArray(stripCodeFence(raw))

	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return nil, &ParseError{Kind: kind, Reason: ParseInvalidJSON, Err: err}
	}
	if err := llm.ValidateJSON(itemArraySchema, json.RawMessage(text)); err != nil {
		return nil, &ParseError{Kind: kind, Reason: ParseNotSequence, Err: err}
	}

	list := decoded.([]any)
	if len(list) < count {
		return nil, &ParseError{Kind: kind, Reason: ParseInsufficient, Found: len(list), Want: count}
	}

	out := make([]RawItem, 0, count)
	for _, v := range list[:count] {
		out = append(out, RawItem(v.(map[string]any)))
	}
	return out, nil
}

// stripCodeFence returns the body of the first markdown code fence, or the
// text unchanged when there is none.
func stripCodeFence(s string) string {
	if m := codeFenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(s)
}

// extractJSONArray returns the first top-level JSON array in s. Brackets
// inside string literals are ignored. Without any '[' the whole text is
// returned so the decoder reports what it actually got.
func extractJSONArray(s string) string {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return s
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return s[start:]
}

type mcqParseState int

const (
	awaitingQuestion mcqParseState = iota
	accumulatingOptions
)

// pendingMCQ is the question being assembled by the text parser.
type pendingMCQ struct {
	question string
	options  map[string]any
	answer   string
}

func (p *pendingMCQ) complete() bool {
	for _, l := range items.OptionLetters {
		if _, ok := p.options[l]; !ok {
			return false
		}
	}
	return true
}

func (p *pendingMCQ) raw() RawItem {
	return RawItem{
		FieldQuestion:      p.question,
		FieldOptions:       p.options,
		FieldCorrectAnswer: p.answer,
	}
}

func (o ParserOptions) parseMCQ(raw string, count int) ([]RawItem, error) {
	minQuestion, minOption := 10, 1
	if o.Strict {
		minQuestion, minOption = 30, 2
	}

	var out []RawItem
	var cur *pendingMCQ
	state := awaitingQuestion

	emit := func() {
		if cur != nil && cur.complete() {
			out = append(out, cur.raw())
		}
		cur = nil
		state = awaitingQuestion
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(markdownBoldRe.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}

		if m := questionRe.FindStringSubmatch(line); m != nil {
			rest := strings.TrimSpace(m[1])
			if utf8.RuneCountInString(rest) > minQuestion && !optionRe.MatchString(rest) {
				emit()
				cur = &pendingMCQ{question: rest, options: map[string]any{}, answer: "a"}
				state = accumulatingOptions
				continue
			}
		}

		if state != accumulatingOptions {
			continue
		}

		if m := answerLineRe.FindStringSubmatch(line); m != nil {
			cur.answer = strings.ToLower(m[1])
			continue
		}
		if m := optionRe.FindStringSubmatch(line); m != nil {
			text := strings.TrimSpace(m[2])
			if utf8.RuneCountInString(text) > minOption {
				cur.options[strings.ToLower(m[1])] = text
			}
		}
	}
	emit()

	if len(out) == 0 {
		return nil, &ParseError{
			Kind:   items.KindMCQ,
			Reason: ParseInsufficient,
			Want:   count,
			Err:    errors.New("no complete numbered question found"),
		}
	}
	if len(out) > count {
		out = out[:count]
	}
	return out, nil
}
