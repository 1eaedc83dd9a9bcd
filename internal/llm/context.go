package llm

import "context"

type ctxKey int

const (
	purposeKey ctxKey = iota
	attemptKey
)

// WithPurpose labels the calls made with ctx, typically with the item
// kind being generated. The label ends up in the event log.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

// WithAttempt records which generation attempt (1-based) a call belongs to.
func WithAttempt(ctx context.Context, attempt int) context.Context {
	return context.WithValue(ctx, attemptKey, attempt)
}

// AttemptFrom returns the attempt set by WithAttempt, or 0.
func AttemptFrom(ctx context.Context) int {
	n, _ := ctx.Value(attemptKey).(int)
	return n
}
