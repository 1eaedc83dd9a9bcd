package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/abhisek/assessgen/internal/logger"
)

// RetryProvider retries transient provider failures with capped
// exponential backoff. It sits inside a single generation attempt; the
// item pipeline runs its own attempts on top.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	log    *logger.Logger
	sleep  func(context.Context, time.Duration) error
}

// WithRetry wraps p. log may be nil.
func WithRetry(p Provider, cfg RetryConfig, log *logger.Logger) *RetryProvider {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: p, config: cfg, log: log, sleep: sleepCtx}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	invalidSeen := false
	var err error
	for attempt := 1; ; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		class := Classify(err)
		if !retryable(class, &invalidSeen) || attempt >= r.config.MaxAttempts {
			return nil, err
		}

		wait := r.backoff(attempt, err)
		r.log.Debug("retrying LLM call",
			"purpose", PurposeFrom(ctx),
			"try", attempt,
			"class", string(class),
			"wait", wait,
		)
		if serr := r.sleep(ctx, wait); serr != nil {
			return nil, serr
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryable reports whether a failure of the given class is worth another
// call. Invalid responses get a single second chance.
func retryable(class ErrorClass, invalidSeen *bool) bool {
	switch class {
	case ClassTimeout, ClassRejected, ClassTruncated:
		return false
	case ClassInvalid:
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
		return true
	default:
		return true
	}
}

// backoff returns the wait before retry number try (1-based). A rate limit
// carrying Retry-After overrides the schedule.
func (r *RetryProvider) backoff(try int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(try-1))
	wait = math.Min(wait, float64(r.config.MaxWait))
	// ±20% jitter
	wait *= 0.8 + 0.4*rand.Float64()
	return time.Duration(math.Max(wait, 0))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
