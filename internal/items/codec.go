package items

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// DecodeBatch decodes a JSON array of items of the given kind, as stored
// with a generated batch.
func DecodeBatch(kind Kind, data []byte) (Batch, error) {
	var out Batch
	switch kind {
	case KindMCQ:
		var list []MCQItem
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("decode %s batch: %w", kind, err)
		}
		for _, it := range list {
			out = append(out, it)
		}
	case KindFillBlank:
		var list []FillBlankItem
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("decode %s batch: %w", kind, err)
		}
		for _, it := range list {
			out = append(out, it)
		}
	case KindTrueFalse:
		var list []TrueFalseItem
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("decode %s batch: %w", kind, err)
		}
		for _, it := range list {
			out = append(out, it)
		}
	default:
		return nil, fmt.Errorf("decode batch: unknown item kind %q", kind)
	}
	return out, nil
}

// WriteSheet renders the batch as a numbered plain-text sheet. With
// answers set it renders the answer key instead.
func WriteSheet(w io.Writer, b Batch, answers bool) error {
	var sb strings.Builder
	for i, it := range b {
		n := i + 1
		switch v := it.(type) {
		case MCQItem:
			if answers {
				fmt.Fprintf(&sb, "%d. %s) %s\n", n, v.CorrectAnswer, v.CorrectText())
				continue
			}
			fmt.Fprintf(&sb, "%d. %s\n", n, v.Question)
			for _, l := range OptionLetters {
				fmt.Fprintf(&sb, "   %s) %s\n", l, v.Options[l])
			}
			sb.WriteString("\n")
		case FillBlankItem:
			if answers {
				fmt.Fprintf(&sb, "%d. %s\n", n, v.BlankWord)
				continue
			}
			fmt.Fprintf(&sb, "%d. %s\n", n, v.Sentence)
			if v.Hint != "" {
				fmt.Fprintf(&sb, "   Hint: %s\n", v.Hint)
			}
			sb.WriteString("\n")
		case TrueFalseItem:
			if answers {
				fmt.Fprintf(&sb, "%d. %s: %s\n", n, v.AnswerLabel(), v.Explanation)
				continue
			}
			fmt.Fprintf(&sb, "%d. %s  (True / False)\n\n", n, v.Statement)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
