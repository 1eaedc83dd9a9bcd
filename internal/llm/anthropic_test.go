package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicReply(stop string, texts ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blocks := make([]map[string]any, len(texts))
		for i, s := range texts {
			blocks[i] = map[string]any{"type": "text", "text": s}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_test",
			"type":        "message",
			"role":        "assistant",
			"content":     blocks,
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": stop,
			"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
		})
	}
}

func anthropicFailure(status int, errType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": errType, "message": "failed"},
		})
	}
}

func TestAnthropicProvider_JoinsTextBlocks(t *testing.T) {
	p := newTestAnthropicProvider(t, anthropicReply("end_turn",
		"1. Which loop checks its condition after the body?\n",
		"a) while\nb) for\nc) do-while\nd) foreach\nAnswer: c\n",
	))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are an expert educator.",
		Messages:  []Message{{Role: RoleUser, Content: "Generate questions."}},
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Text(), "do-while\nd) foreach")
	assert.Equal(t, 80, resp.Usage.TotalTokens)
	assert.Equal(t, "end", resp.StopReason)
}

func TestAnthropicProvider_TruncatedStructuredOutput(t *testing.T) {
	p := newTestAnthropicProvider(t, anthropicReply("max_tokens", `[{"statement":"Loops`))

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Generate statements."}},
		MaxTokens: 16,
		Schema:    &Schema{Name: "items", Definition: map[string]any{"type": "array"}},
	})
	var trunc *ErrMaxTokensExceeded
	require.ErrorAs(t, err, &trunc)
}

func TestAnthropicProvider_ErrorMapping(t *testing.T) {
	tests := []struct {
		status  int
		errType string
		want    ErrorClass
	}{
		{http.StatusTooManyRequests, "rate_limit_error", ClassRateLimit},
		{http.StatusInternalServerError, "api_error", ClassNetwork},
		{http.StatusUnauthorized, "authentication_error", ClassRejected},
		{http.StatusBadRequest, "invalid_request_error", ClassRejected},
	}
	for _, tt := range tests {
		t.Run(tt.errType, func(t *testing.T) {
			p := newTestAnthropicProvider(t, anthropicFailure(tt.status, tt.errType))
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "test"}},
				MaxTokens: 100,
			})
			require.Error(t, err)
			assert.Equal(t, tt.want, Classify(err))
		})
	}
}

func TestAnthropicParams(t *testing.T) {
	params := anthropicParams("claude-haiku-4-5-20251001", Request{
		System: "educator",
		Messages: []Message{
			{Role: RoleUser, Content: "first"},
			{Role: RoleAssistant, Content: "reply"},
		},
		MaxTokens:        3000,
		Temperature:      0.7,
		FrequencyPenalty: 0.5,
	})

	assert.Equal(t, int64(3000), params.MaxTokens)
	require.Len(t, params.Messages, 2)
	assert.Equal(t, anthropic.MessageParamRoleAssistant, params.Messages[1].Role)
	require.Len(t, params.System, 1)
	assert.Equal(t, "educator", params.System[0].Text)
}

func TestAnthropicModelAliases(t *testing.T) {
	assert.Equal(t, "claude-sonnet-4-20250514", resolveModel("claude-sonnet", anthropicModels))
	assert.Equal(t, "claude-haiku-4-5-20251001", resolveModel("claude-haiku", anthropicModels))
	assert.Equal(t, "claude-opus-4-1", resolveModel("claude-opus-4-1", anthropicModels))
}
