package itemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/assessgen/internal/items"
)

func validMCQ(q string) RawItem {
	return RawItem{
		FieldQuestion: q,
		FieldOptions: map[string]any{
			"a": "Linear search",
			"b": "Binary search",
			"c": "Hashing",
			"d": "Jump search",
		},
		FieldCorrectAnswer: "b",
	}
}

func validBlank(sentence, word string) RawItem {
	return RawItem{FieldSentence: sentence, FieldBlankWord: word, FieldHint: "Think about iteration"}
}

func validStatement(s string, answer bool) RawItem {
	return RawItem{FieldStatement: s, FieldAnswer: answer, FieldExplanation: "Explained in chapter two."}
}

func TestDefaultValidators_ChainOrder(t *testing.T) {
	want := map[items.Kind][]string{
		items.KindMCQ:       {"count", "structural", "mcq", "batch-uniqueness"},
		items.KindFillBlank: {"count", "structural", "fill-blank", "batch-uniqueness"},
		items.KindTrueFalse: {"count", "structural", "true-false", "batch-uniqueness"},
	}
	chains := DefaultValidators()
	for kind, names := range want {
		chain := chains[kind]
		require.Len(t, chain, len(names), kind)
		for i, v := range chain {
			if v.Name() != names[i] {
				t.Errorf("%s validator[%d] = %q, want %q", kind, i, v.Name(), names[i])
			}
		}
	}
}

func TestValidators_Reasons(t *testing.T) {
	mcqReq := Request{Topic: "searching", Count: 1, Kind: items.KindMCQ}
	fbReq := Request{Topic: "loops", Count: 1, Kind: items.KindFillBlank}
	tfReq := Request{Topic: "loops", Count: 2, Kind: items.KindTrueFalse}

	withOption := func(letter, text string) RawItem {
		it := validMCQ("Which search runs in logarithmic time on sorted data?")
		it[FieldOptions].(map[string]any)[letter] = text
		return it
	}

	tests := []struct {
		name   string
		batch  []RawItem
		req    Request
		reason Reason
		index  int
	}{
		{"short batch", nil, mcqReq, ReasonCountMismatch, -1},
		{"missing question", []RawItem{{FieldOptions: map[string]any{}, FieldCorrectAnswer: "a"}}, mcqReq, ReasonMissingField, 0},
		{"options not a map", []RawItem{{FieldQuestion: "Which search is fastest here?", FieldOptions: "a, b", FieldCorrectAnswer: "a"}}, mcqReq, ReasonMissingField, 0},
		{"missing hint", []RawItem{{FieldSentence: "A _____ repeats code.", FieldBlankWord: "loop"}}, fbReq, ReasonMissingField, 0},
		{"missing answer", []RawItem{{FieldStatement: "Loops repeat code blocks.", FieldExplanation: "That is what they do."}, validStatement("Loops never end at all.", false)}, tfReq, ReasonMissingField, 0},
		{"short question", []RawItem{validMCQ("Search?")}, mcqReq, ReasonTooShort, 0},
		{"generic question", []RawItem{validMCQ("What is Searching?")}, mcqReq, ReasonGenericQuestion, 0},
		{"define question", []RawItem{validMCQ("Define searching.")}, mcqReq, ReasonGenericQuestion, 0},
		{"missing option", []RawItem{func() RawItem {
			it := validMCQ("Which search runs in logarithmic time on sorted data?")
			delete(it[FieldOptions].(map[string]any), "d")
			return it
		}()}, mcqReq, ReasonMissingOption, 0},
		{"one char option", []RawItem{withOption("c", "X")}, mcqReq, ReasonTooShort, 0},
		{"placeholder option", []RawItem{withOption("a", "Option A")}, mcqReq, ReasonPlaceholderOption, 0},
		{"placeholder first", []RawItem{withOption("d", "The first one")}, mcqReq, ReasonPlaceholderOption, 0},
		{"bad answer letter", []RawItem{func() RawItem {
			it := validMCQ("Which search runs in logarithmic time on sorted data?")
			it[FieldCorrectAnswer] = "e"
			return it
		}()}, mcqReq, ReasonInvalidCorrectAnswer, 0},
		{"no marker", []RawItem{validBlank("A loop repeats code.", "loop")}, fbReq, ReasonNoBlankMarker, 0},
		{"two markers", []RawItem{validBlank("A _____ repeats _____.", "loop")}, fbReq, ReasonNoBlankMarker, 0},
		{"forbidden word", []RawItem{validBlank("_____ loop repeats code.", "The")}, fbReq, ReasonForbiddenBlankWord, 0},
		{"short blank word", []RawItem{validBlank("The _____ command repeats code.", "do")}, fbReq, ReasonTooShort, 0},
		{"no punctuation", []RawItem{validBlank("A _____ repeats code", "loop")}, fbReq, ReasonUngrammatical, 0},
		{"double space", []RawItem{validBlank("A _____  repeats code.", "loop")}, fbReq, ReasonUngrammatical, 0},
		{"copula blank word", []RawItem{validBlank("It is _____ evaluated first.", "are")}, fbReq, ReasonForbiddenBlankWord, 0},
		{"article bigram", []RawItem{validBlank("It is a _____ construct.", "a loop")}, fbReq, ReasonUngrammatical, 0},
		{"string answer", []RawItem{{FieldStatement: "Loops repeat code blocks.", FieldAnswer: "true", FieldExplanation: "That is what they do."}, validStatement("Loops never end at all.", false)}, tfReq, ReasonNonBooleanAnswer, 0},
		{"short statement", []RawItem{validStatement("Loops.", true), validStatement("Loops never end at all.", false)}, tfReq, ReasonTooShort, 0},
		{"short explanation", []RawItem{validStatement("Loops repeat code blocks.", true), {FieldStatement: "Loops never end at all.", FieldAnswer: false, FieldExplanation: "No."}}, tfReq, ReasonTooShort, 1},
		{"duplicate text", []RawItem{validStatement("Loops repeat code blocks.", true), validStatement("loops repeat code-blocks!", false)}, tfReq, ReasonDuplicateText, 1},
		{"unbalanced", []RawItem{validStatement("Loops repeat code blocks.", true), validStatement("A while loop tests first.", true)}, tfReq, ReasonUnbalanced, -1},
		{"duplicate blank word", []RawItem{validBlank("A _____ repeats a block of code.", "loop"), validBlank("Every iteration runs one _____ body.", "Loop")}, Request{Topic: "loops", Count: 2, Kind: items.KindFillBlank}, ReasonDuplicateBlankWord, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := runChain(DefaultValidators()[tt.req.Kind], tt.batch, tt.req)
			require.NotNil(t, verr, "expected rejection")
			assert.Equal(t, tt.reason, verr.Reason, verr.Error())
			assert.Equal(t, tt.index, verr.Index)
			assert.True(t, verr.Retryable)
		})
	}
}

func TestValidators_AcceptValidBatches(t *testing.T) {
	mcq := []RawItem{
		validMCQ("Which search runs in logarithmic time on sorted data?"),
		validMCQ("Which technique maps keys to buckets for constant lookup?"),
	}
	assert.Nil(t, runChain(DefaultValidators()[items.KindMCQ], mcq, Request{Topic: "searching", Count: 2, Kind: items.KindMCQ}))

	fb := []RawItem{
		validBlank("A _____ loop always runs its body at least once.", "do-while"),
		validBlank("The _____ statement exits the nearest enclosing loop.", "break"),
	}
	assert.Nil(t, runChain(DefaultValidators()[items.KindFillBlank], fb, Request{Topic: "loops", Count: 2, Kind: items.KindFillBlank}))

	tf := []RawItem{
		validStatement("A while loop checks its condition before each pass.", true),
		validStatement("A do-while loop may skip its body entirely.", false),
	}
	assert.Nil(t, runChain(DefaultValidators()[items.KindTrueFalse], tf, Request{Topic: "loops", Count: 2, Kind: items.KindTrueFalse}))
}

func TestGrammarProblem(t *testing.T) {
	tests := []struct {
		sentence, word string
		ok             bool
	}{
		{"_____ is the branch of computer science dealing with intelligent machines.", "Artificial Intelligence", true},
		{"Which keyword exits a loop early: _____?", "break", true},
		{"Loops are fun with _____!", "Python", true},
		{"The _____ algorithm builds decision trees", "ID3", false},
		{"This is the _____ loop.", "the", false},
		{"Values _____ are stored.", "is", false},
		{"Results was _____ computed.", "were", false},
	}
	for _, tt := range tests {
		got := grammarProblem(tt.sentence, tt.word)
		if (got == "") != tt.ok {
			t.Errorf("grammarProblem(%q, %q) = %q, want ok=%v", tt.sentence, tt.word, got, tt.ok)
		}
	}
}

func TestValidationError_Error(t *testing.T) {
	item := &ValidationError{Validator: "mcq", Reason: ReasonTooShort, Index: 3, Message: "question is too short"}
	assert.Equal(t, `validator "mcq": item 3: question is too short (too_short)`, item.Error())

	batch := &ValidationError{Validator: "count", Reason: ReasonCountMismatch, Index: -1, Message: "got 2 items, want 5"}
	assert.Equal(t, `validator "count": got 2 items, want 5 (count_mismatch)`, batch.Error())
}
