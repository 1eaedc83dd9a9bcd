package itemgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/assessgen/internal/fallback"
	"github.com/abhisek/assessgen/internal/items"
	"github.com/abhisek/assessgen/internal/llm"
	"github.com/abhisek/assessgen/internal/logger"
)

// Fallback produces items without calling an LLM. It must always return
// exactly count items.
type Fallback interface {
	Generate(topic string, count int, kind items.Kind) []items.Item
}

// Orchestrator runs the LLM pipeline with bounded retries and degrades to
// the fallback generator. It holds only read-only state and is safe for
// concurrent use.
type Orchestrator struct {
	provider llm.Provider
	config   Config
	fallback Fallback
	parser   ParserOptions
	log      *logger.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithFallback replaces the default deterministic fallback generator.
func WithFallback(f Fallback) Option {
	return func(o *Orchestrator) { o.fallback = f }
}

// WithLogger sets the logger used for attempts, rejections and fallback.
func WithLogger(l *logger.Logger) Option {
	return func(o *Orchestrator) { o.log = l }
}

// New creates an Orchestrator. A nil provider is valid: every request is
// then served by the fallback generator.
func New(provider llm.Provider, cfg Config, opts ...Option) *Orchestrator {
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = DefaultConfig().MaxRetries
	}
	o := &Orchestrator{
		provider: provider,
		config:   cfg,
		parser:   ParserOptions{Strict: cfg.StrictMCQ},
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.fallback == nil {
		o.fallback = fallback.New(fallback.WithLogger(o.log))
	}
	return o
}

// Generate returns exactly req.Count validated, unique items. The only
// error it returns wraps ErrInvalidRequest; provider, parse and validation
// failures are recorded in Result.Failures and end in the fallback.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*Result, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := o.log.With("kind", string(req.Kind), "topic", req.Topic, "count", req.Count)
	res := &Result{}

	if o.provider == nil {
		log.Info("no LLM provider configured, using fallback")
	} else {
		for res.Attempts < o.config.MaxRetries {
			res.Attempts++
			got, err := o.attempt(llm.WithAttempt(ctx, res.Attempts), req)
			if err == nil {
				log.Info("generated items", "attempt", res.Attempts, "items", len(got))
				res.Items = got
				res.Source = SourceLLM
				return res, nil
			}
			res.Failures = append(res.Failures, err)
			logAttemptFailure(log, res.Attempts, err)
		}
		log.Warn("LLM attempts exhausted, using fallback", "attempts", res.Attempts)
	}

	res.Items = o.fallback.Generate(req.Topic, req.Count, req.Kind)
	res.Source = SourceFallback
	return res, nil
}

// attempt runs one build, call, parse, validate and dedupe pass. Panics are
// recovered and reported as errors.
func (o *Orchestrator) attempt(ctx context.Context, req Request) (got []items.Item, err error) {
	defer func() {
		if r := recover(); r != nil {
			got = nil
			err = fmt.Errorf("%w: %v", errAttemptPanicked, r)
		}
	}()

	llmReq, err := BuildPrompt(req.Topic, req.Count, req.Kind, o.config)
	if err != nil {
		return nil, err
	}

	params := o.config.ParamsFor(req.Kind)
	callCtx, cancel := context.WithTimeout(llm.WithPurpose(ctx, string(req.Kind)), params.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := o.provider.Generate(callCtx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}
	o.log.Debug("LLM call finished", "kind", string(req.Kind), "latency", time.Since(start))

	raw, err := o.parser.Parse(resp.Text(), req.Count, req.Kind)
	if err != nil {
		return nil, err
	}

	if verr := runChain(o.chainFor(req.Kind), raw, req); verr != nil {
		return nil, verr
	}

	unique := items.Dedupe(toItems(raw, req.Kind))
	if len(unique) < req.Count {
		return nil, &ValidationError{
			Validator: "dedupe",
			Reason:    ReasonCountMismatch,
			Index:     -1,
			Message:   fmt.Sprintf("%d unique items after dedupe, want %d", len(unique), req.Count),
			Retryable: true,
		}
	}
	return unique[:req.Count], nil
}

func (o *Orchestrator) chainFor(kind items.Kind) []Validator {
	if chain, ok := o.config.Validators[kind]; ok {
		return chain
	}
	return DefaultValidators()[kind]
}

func logAttemptFailure(log *logger.Logger, attempt int, err error) {
	var verr *ValidationError
	var perr *ParseError
	switch {
	case errors.As(err, &verr):
		log.Warn("LLM items rejected",
			"attempt", attempt,
			"validator", verr.Validator,
			"reason", string(verr.Reason),
			"index", verr.Index,
			"message", verr.Message,
		)
	case errors.As(err, &perr):
		log.Warn("LLM response unparseable",
			"attempt", attempt,
			"reason", string(perr.Reason),
			"found", perr.Found,
			"error", err.Error(),
		)
	default:
		log.Warn("LLM attempt failed",
			"attempt", attempt,
			"class", string(llm.Classify(err)),
			"error", err.Error(),
		)
	}
}
