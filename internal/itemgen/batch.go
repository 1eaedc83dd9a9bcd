package itemgen

import (
	"fmt"

	"github.com/abhisek/assessgen/internal/items"
)

// BatchUniquenessValidator rejects batches with repeated items and
// true/false batches that use a single answer value.
type BatchUniquenessValidator struct{}

func (v *BatchUniquenessValidator) Name() string { return "batch-uniqueness" }

func (v *BatchUniquenessValidator) Validate(batch []RawItem, req Request) *ValidationError {
	converted := toItems(batch, req.Kind)

	if dup := items.CheckUnique(converted); dup != nil {
		reason := ReasonDuplicateText
		if dup.Field == "key_term" {
			reason = ReasonDuplicateBlankWord
		}
		return &ValidationError{
			Validator: v.Name(),
			Reason:    reason,
			Index:     dup.Index,
			Message:   fmt.Sprintf("repeats item %d by %s", dup.First, dup.Field),
			Retryable: true,
		}
	}

	if req.Kind == items.KindTrueFalse && len(converted) > 1 {
		t, f := items.Batch(converted).TrueFalseBalance()
		if t == 0 || f == 0 {
			return &ValidationError{
				Validator: v.Name(),
				Reason:    ReasonUnbalanced,
				Index:     -1,
				Message:   fmt.Sprintf("%d true and %d false answers", t, f),
				Retryable: true,
			}
		}
	}
	return nil
}

// toItems converts raw items into typed items of kind.
func toItems(batch []RawItem, kind items.Kind) []items.Item {
	out := make([]items.Item, 0, len(batch))
	for _, r := range batch {
		out = append(out, toItem(r, kind))
	}
	return out
}
