package itemgen

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/assessgen/internal/items"
)

func TestParseResponse_MCQRoundTrip(t *testing.T) {
	raw := `1. What is the capital concept of X?
a) Alpha
b) Beta
c) Gamma
d) Delta
Answer: b`

	got, err := ParseResponse(raw, 1, items.KindMCQ)
	require.NoError(t, err)
	require.Len(t, got, 1)

	q := toItem(got[0], items.KindMCQ).(items.MCQItem)
	assert.Equal(t, "What is the capital concept of X?", q.Question)
	assert.Equal(t, map[string]string{"a": "Alpha", "b": "Beta", "c": "Gamma", "d": "Delta"}, q.Options)
	assert.Equal(t, "b", q.CorrectAnswer)
}

func TestParseResponse_MCQFormattingVariants(t *testing.T) {
	raw := `Here are your questions:

**1) Which loop always runs its body at least once?**
A. for loop
B. while loop
C. do-while loop
D. foreach loop
**Answer:** (C)

2: Which statement exits the nearest enclosing loop?
a) break
b) continue
c) return
d) goto
Correct - a

3. Which keyword skips to the next iteration?
a) break
b) continue
c) switch
d) yield`

	got, err := ParseResponse(raw, 5, items.KindMCQ)
	require.NoError(t, err)
	require.Len(t, got, 3, "fewer than count is not a parse error for text")

	assert.Equal(t, "c", got[0].String(FieldCorrectAnswer))
	assert.Equal(t, "do-while loop", got[0].Options()["c"])
	assert.Equal(t, "a", got[1].String(FieldCorrectAnswer))
	assert.Equal(t, "a", got[2].String(FieldCorrectAnswer), "missing answer line defaults to a")
}

func TestParseResponse_MCQIncompleteQuestionDropped(t *testing.T) {
	raw := `1. Which protocol guarantees ordered delivery?
a) TCP
b) UDP
c) ICMP
Answer: a

2. Which layer does IP operate at in the OSI model?
a) Network
b) Transport
c) Session
d) Physical
Answer: a`

	got, err := ParseResponse(raw, 2, items.KindMCQ)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].String(FieldQuestion), "Which layer")
}

func TestParseResponse_MCQTruncatesToCount(t *testing.T) {
	got, err := ParseResponse(mcqText(7), 5, items.KindMCQ)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestParseResponse_MCQStrictThresholds(t *testing.T) {
	raw := `1. Short but ok?
a) Always
b) Rarely
c) Maybe
d) Never
Answer: a`

	lenient, err := ParseResponse(raw, 1, items.KindMCQ)
	require.NoError(t, err)
	assert.Len(t, lenient, 1)

	_, err = ParserOptions{Strict: true}.Parse(raw, 1, items.KindMCQ)
	var perr *ParseError
	require.True(t, errors.As(err, &perr), "strict mode needs a longer question")
	assert.Equal(t, ParseInsufficient, perr.Reason)

	// Two-letter options are kept in lenient mode and dropped in strict mode.
	short := `1. Which of these operating systems is open source software?
a) OS
b) Linux
c) NT
d) iOS
Answer: b`
	kept, err := ParseResponse(short, 1, items.KindMCQ)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "OS", kept[0].Options()["a"])

	_, err = ParserOptions{Strict: true}.Parse(short, 1, items.KindMCQ)
	require.True(t, errors.As(err, &perr), "strict mode drops two-letter options")
	assert.Equal(t, ParseInsufficient, perr.Reason)
}

func TestParseResponse_NoContent(t *testing.T) {
	for _, kind := range items.AllKinds {
		_, err := ParseResponse("  \n ", 5, kind)
		var perr *ParseError
		require.True(t, errors.As(err, &perr), kind)
		assert.Equal(t, ParseNoContent, perr.Reason)
	}
}

func TestParseResponse_MalformedJSON(t *testing.T) {
	_, err := ParseResponse("{not valid", 5, items.KindFillBlank)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ParseInvalidJSON, perr.Reason)
	assert.Equal(t, items.KindFillBlank, perr.Kind)
}

func TestParseResponse_NotSequence(t *testing.T) {
	tests := []string{
		`{"statement": "Loops repeat code.", "answer": true}`,
		`[1, 2, 3, 4, 5]`,
		`"just a string"`,
	}
	for _, raw := range tests {
		_, err := ParseResponse(raw, 1, items.KindTrueFalse)
		var perr *ParseError
		require.True(t, errors.As(err, &perr), raw)
		assert.Equal(t, ParseNotSequence, perr.Reason, raw)
	}
}

func TestParseResponse_Insufficient(t *testing.T) {
	_, err := ParseResponse(trueFalseJSON(3), 5, items.KindTrueFalse)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ParseInsufficient, perr.Reason)
	assert.Equal(t, 3, perr.Found)
	assert.Equal(t, 5, perr.Want)
	assert.Contains(t, perr.Error(), "found 3, want 5")
}

func TestParseResponse_CodeFenceAndProse(t *testing.T) {
	raw := "Sure! Here are the questions:\n```json\n" + fillBlankJSON(6) + "\n```\nLet me know if you need more."

	got, err := ParseResponse(raw, 5, items.KindFillBlank)
	require.NoError(t, err)
	assert.Len(t, got, 5, "truncated to count")
	assert.Equal(t, "construct1", got[0].String(FieldBlankWord))
}

func TestParseResponse_BracketsInsideStrings(t *testing.T) {
	raw := `Output: [{"sentence": "An array literal such as [1, 2] is written with _____.", "blank_word": "brackets", "hint": "Characters ] and ["}] trailing text ]`

	got, err := ParseResponse(raw, 1, items.KindFillBlank)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "brackets", got[0].String(FieldBlankWord))
}

func TestParseResponse_KeepsLooseTypes(t *testing.T) {
	raw := `[{"statement": "A while loop checks its condition first.", "answer": "true", "explanation": "It is a pre-test loop."}]`

	got, err := ParseResponse(raw, 1, items.KindTrueFalse)
	require.NoError(t, err)
	assert.Equal(t, "true", got[0][FieldAnswer], "string answer survives parsing")
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`[1,2]`, `[1,2]`},
		{`x [[1],[2]] y`, `[[1],[2]]`},
		{`["a]b", "c\"]"] tail`, `["a]b", "c\"]"]`},
		{`{"no": "array"}`, `{"no": "array"}`},
		{`[unterminated`, `[unterminated`},
	}
	for _, tt := range tests {
		if got := extractJSONArray(tt.in); got != tt.want {
			t.Errorf("extractJSONArray(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// mcqText renders n distinct, valid numbered questions.
func mcqText(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "%d. Which construct number %d is used in loop structures?\n", i, i)
		b.WriteString("a) while loop\nb) for loop\nc) do-while loop\nd) goto label\nAnswer: b\n\n")
	}
	return b.String()
}
