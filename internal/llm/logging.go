package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/assessgen/internal/logger"
	"github.com/abhisek/assessgen/internal/store"
)

// LoggingProvider records every call in the event log and writes a
// one-line summary to the logger.
type LoggingProvider struct {
	inner     Provider
	name      string
	eventRepo store.EventRepo
	log       *logger.Logger
}

// WithLogging wraps a Provider with event logging. repo may be nil when
// nothing should be persisted.
func WithLogging(p Provider, name string, repo store.EventRepo, log *logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &LoggingProvider{inner: p, name: name, eventRepo: repo, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
		Attempt:     AttemptFrom(ctx),
		ErrorClass:  string(Classify(err)),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}

	if err != nil {
		data.ErrorMessage = err.Error()
		l.log.Warn("llm request failed",
			"provider", l.name, "purpose", purpose, "attempt", data.Attempt,
			"class", data.ErrorClass, "latency_ms", latencyMs, "error", err)
	} else {
		l.log.Debug("llm request",
			"provider", l.name, "model", data.Model, "purpose", purpose,
			"input_tokens", data.InputTokens, "output_tokens", data.OutputTokens, "latency_ms", latencyMs)
	}

	// A failed write is logged, never returned.
	if l.eventRepo != nil {
		if logErr := l.eventRepo.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
			l.log.Warn("failed to record LLM request event", "error", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest renders the prompt for the event log: sampling
// settings, system prompt, messages and schema, one section each.
func serializeRequest(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[params] max_tokens=%d temperature=%g top_p=%g frequency_penalty=%g presence_penalty=%g\n\n",
		req.MaxTokens, req.Temperature, req.TopP, req.FrequencyPenalty, req.PresencePenalty)
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
