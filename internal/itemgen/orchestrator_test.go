package itemgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/assessgen/internal/items"
	"github.com/abhisek/assessgen/internal/llm"
	"github.com/abhisek/assessgen/internal/logger"
)

// fillBlankJSON renders n distinct, valid fill-in-the-blank objects.
func fillBlankJSON(n int) string {
	list := make([]map[string]any, n)
	for i := range list {
		list[i] = map[string]any{
			"sentence":   fmt.Sprintf("Chapter %d of the loop guide introduces _____.", i+1),
			"blank_word": fmt.Sprintf("construct%d", i+1),
			"hint":       "A looping keyword",
		}
	}
	return mustJSON(list)
}

// trueFalseJSON renders n distinct, valid statements with alternating
// answers.
func trueFalseJSON(n int) string {
	list := make([]map[string]any, n)
	for i := range list {
		list[i] = map[string]any{
			"statement":   fmt.Sprintf("Statement %d about loop structures is checkable.", i+1),
			"answer":      i%2 == 0,
			"explanation": "Explained in the loop structures chapter.",
		}
	}
	return mustJSON(list)
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.FromZap(zap.New(core)), logs
}

func TestGenerate_LLMSuccess(t *testing.T) {
	tests := []struct {
		kind items.Kind
		text string
	}{
		{items.KindMCQ, mcqText(5)},
		{items.KindFillBlank, fillBlankJSON(5)},
		{items.KindTrueFalse, trueFalseJSON(5)},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockText(tt.text))
			o := New(mock, DefaultConfig())

			res, err := o.Generate(context.Background(), Request{Topic: "loop structures", Count: 5, Kind: tt.kind})
			require.NoError(t, err)
			assert.Equal(t, SourceLLM, res.Source)
			assert.Equal(t, 1, res.Attempts)
			assert.Empty(t, res.Failures)
			require.Len(t, res.Items, 5)
			for _, it := range res.Items {
				assert.Equal(t, tt.kind, it.Kind())
			}
			assert.Equal(t, 1, mock.CallCount())
		})
	}
}

func TestGenerate_RequestParams(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(fillBlankJSON(5)))
	o := New(mock, DefaultConfig())

	_, err := o.Generate(context.Background(), Request{Topic: "loop structures", Count: 5, Kind: items.KindFillBlank})
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Equal(t, 4000, req.MaxTokens)
	assert.Equal(t, 0.7, req.Temperature)
	assert.Equal(t, 0.9, req.TopP)
	assert.Contains(t, req.System, "expert educator")
	assert.Nil(t, req.Schema)
}

func TestGenerate_TwoAttemptsThenFallback(t *testing.T) {
	// Empty queue: every call fails with ErrProviderUnavailable.
	mock := llm.NewMockProvider()
	log, logs := observedLogger()
	o := New(mock, DefaultConfig(), WithLogger(log))

	res, err := o.Generate(context.Background(), Request{Topic: "loop structures", Count: 10, Kind: items.KindTrueFalse})
	require.NoError(t, err)

	assert.Equal(t, 2, mock.CallCount())
	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, SourceFallback, res.Source)
	require.Len(t, res.Failures, 2)
	var unavailable *llm.ErrProviderUnavailable
	assert.True(t, errors.As(res.Failures[0], &unavailable))
	assert.Len(t, res.Items, 10)
	assert.Equal(t, 1, logs.FilterMessage("LLM attempts exhausted, using fallback").Len())
}

func TestGenerate_RetryRecovers(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockText("I cannot help with that."),
		llm.MockText(trueFalseJSON(6)),
	)
	o := New(mock, DefaultConfig())

	res, err := o.Generate(context.Background(), Request{Topic: "loop structures", Count: 6, Kind: items.KindTrueFalse})
	require.NoError(t, err)
	assert.Equal(t, SourceLLM, res.Source)
	assert.Equal(t, 2, res.Attempts)
	require.Len(t, res.Failures, 1)

	var perr *ParseError
	assert.True(t, errors.As(res.Failures[0], &perr))
	assert.Len(t, res.Items, 6)
}

func TestGenerate_ValidationFailureFallsBack(t *testing.T) {
	bad := strings.Replace(fillBlankJSON(5), `"construct3"`, `"the"`, 1)
	mock := llm.NewMockProvider(llm.MockText(bad), llm.MockText(bad))
	log, logs := observedLogger()
	o := New(mock, DefaultConfig(), WithLogger(log))

	res, err := o.Generate(context.Background(), Request{Topic: "loop structures", Count: 5, Kind: items.KindFillBlank})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, res.Source)
	require.Len(t, res.Failures, 2)

	var verr *ValidationError
	require.True(t, errors.As(res.Failures[0], &verr))
	assert.Equal(t, "fill-blank", verr.Validator)
	assert.Equal(t, ReasonForbiddenBlankWord, verr.Reason)
	assert.Equal(t, 2, verr.Index)

	rejected := logs.FilterMessage("LLM items rejected").All()
	require.Len(t, rejected, 2)
	assert.Equal(t, "forbidden_blank_word", rejected[0].ContextMap()["reason"])
}

func TestGenerate_NilProviderSkipsLLM(t *testing.T) {
	o := New(nil, DefaultConfig())

	for _, kind := range items.AllKinds {
		res, err := o.Generate(context.Background(), Request{Topic: "computer networks", Count: 12, Kind: kind})
		require.NoError(t, err)
		assert.Equal(t, SourceFallback, res.Source)
		assert.Zero(t, res.Attempts)
		assert.Len(t, res.Items, 12)
	}
}

func TestGenerate_ExactCountAllCounts(t *testing.T) {
	o := New(nil, DefaultConfig())
	for count := MinCount; count <= MaxCount; count++ {
		for _, kind := range items.AllKinds {
			res, err := o.Generate(context.Background(), Request{Topic: "Quantum Foo", Count: count, Kind: kind})
			require.NoError(t, err)
			if len(res.Items) != count {
				t.Errorf("%s count %d: got %d items", kind, count, len(res.Items))
			}
			if dup := items.CheckUnique(res.Items); dup != nil {
				t.Errorf("%s count %d: duplicate %+v", kind, count, dup)
			}
		}
	}
}

func TestGenerate_InvalidRequest(t *testing.T) {
	mock := llm.NewMockProvider()
	o := New(mock, DefaultConfig())

	tests := []Request{
		{Topic: "", Count: 10, Kind: items.KindMCQ},
		{Topic: "   ", Count: 10, Kind: items.KindMCQ},
		{Topic: "loops", Count: 4, Kind: items.KindMCQ},
		{Topic: "loops", Count: 31, Kind: items.KindMCQ},
		{Topic: "loops", Count: 10, Kind: items.Kind("essay")},
	}
	for _, req := range tests {
		res, err := o.Generate(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidRequest, "%+v", req)
		assert.Nil(t, res)
	}
	assert.Zero(t, mock.CallCount(), "no stage runs for invalid requests")
}

func TestGenerate_DedupeShortfallRetries(t *testing.T) {
	// Six items where two share the first five tokens; the chain is
	// replaced so only dedupe can notice.
	list := []map[string]any{}
	for i := 0; i < 5; i++ {
		list = append(list, map[string]any{
			"statement":   fmt.Sprintf("Statement %d about loop structures is checkable.", i+1),
			"answer":      i%2 == 0,
			"explanation": "Explained in the loop structures chapter.",
		})
	}
	list[4]["statement"] = "Statement 1 about loop structures differs at the end."

	cfg := DefaultConfig()
	cfg.Validators = map[items.Kind][]Validator{items.KindTrueFalse: {&StructuralValidator{}}}
	mock := llm.NewMockProvider(llm.MockText(mustJSON(list)))
	o := New(mock, cfg)

	res, err := o.Generate(context.Background(), Request{Topic: "loop structures", Count: 5, Kind: items.KindTrueFalse})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, res.Source)

	var verr *ValidationError
	require.True(t, errors.As(res.Failures[0], &verr))
	assert.Equal(t, "dedupe", verr.Validator)
	assert.Equal(t, ReasonCountMismatch, verr.Reason)
}

// panicProvider panics on every call.
type panicProvider struct{ calls int }

func (p *panicProvider) Generate(context.Context, llm.Request) (*llm.Response, error) {
	p.calls++
	panic("boom")
}

func (p *panicProvider) ModelID() string { return "panic" }

func TestGenerate_PanicRecovered(t *testing.T) {
	p := &panicProvider{}
	o := New(p, DefaultConfig())

	res, err := o.Generate(context.Background(), Request{Topic: "python", Count: 5, Kind: items.KindMCQ})
	require.NoError(t, err)
	assert.Equal(t, 2, p.calls)
	assert.Equal(t, SourceFallback, res.Source)
	require.Len(t, res.Failures, 2)
	assert.ErrorIs(t, res.Failures[0], errAttemptPanicked)
	assert.Len(t, res.Items, 5)
}

func TestGenerate_CancelledContextFallsBack(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Retry is the provider layer's concern; a cancelled context surfaces
	// as a provider error here.
	mock := llm.NewMockProvider(llm.MockResponse{Err: context.Canceled}, llm.MockResponse{Err: context.Canceled})
	o := New(mock, DefaultConfig())

	res, err := o.Generate(ctx, Request{Topic: "databases", Count: 8, Kind: items.KindFillBlank})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, res.Source)
	assert.ErrorIs(t, res.Failures[0], context.Canceled)
	assert.Len(t, res.Items, 8)
}

// stubFallback records calls and returns numbered statements.
type stubFallback struct{ calls int }

func (s *stubFallback) Generate(topic string, count int, _ items.Kind) []items.Item {
	s.calls++
	out := make([]items.Item, count)
	for i := range out {
		out[i] = items.NewTrueFalse(fmt.Sprintf("Stub %d on %s.", i, topic), i%2 == 0, "stub explanation")
	}
	return out
}

func TestGenerate_WithFallback(t *testing.T) {
	stub := &stubFallback{}
	o := New(nil, DefaultConfig(), WithFallback(stub))

	res, err := o.Generate(context.Background(), Request{Topic: "graphs", Count: 5, Kind: items.KindTrueFalse})
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "Stub 0 on graphs.", res.Items[0].PrimaryText())
}

func TestGenerate_PerKindTimeout(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.Params[items.KindTrueFalse]
	p.Timeout = 20 * time.Millisecond
	cfg.Params[items.KindTrueFalse] = p

	slow := llm.MockText(trueFalseJSON(5))
	slow.Delay = time.Second
	mock := llm.NewMockProvider(slow, slow)
	log, logs := observedLogger()
	o := New(mock, cfg, WithLogger(log))

	res, err := o.Generate(context.Background(), Request{Topic: "loop structures", Count: 5, Kind: items.KindTrueFalse})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, res.Source)
	require.Len(t, res.Failures, 2)
	assert.ErrorIs(t, res.Failures[0], context.DeadlineExceeded)

	failed := logs.FilterMessage("LLM attempt failed").All()
	require.Len(t, failed, 2)
	assert.Equal(t, "timeout", failed[0].ContextMap()["class"])
}

// attemptRecorder notes the attempt number carried by each call.
type attemptRecorder struct {
	attempts []int
	purposes []string
}

func (r *attemptRecorder) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	r.attempts = append(r.attempts, llm.AttemptFrom(ctx))
	r.purposes = append(r.purposes, llm.PurposeFrom(ctx))
	return nil, errors.New("unreachable host")
}

func (r *attemptRecorder) ModelID() string { return "recorder" }

func TestGenerate_AttemptContext(t *testing.T) {
	rec := &attemptRecorder{}
	o := New(rec, DefaultConfig())

	_, err := o.Generate(context.Background(), Request{Topic: "recursion", Count: 5, Kind: items.KindMCQ})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, rec.attempts)
	assert.Equal(t, []string{"mcq", "mcq"}, rec.purposes)
}
