package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match
	Failed  bool      // only unsuccessful calls
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	Attempt      int    // pipeline attempt, 0 when unknown
	ErrorClass   string // failure category, empty on success
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates calls for one purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token counts for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// Batch is a persisted generation result. Items holds the JSON encoding of
// the item list; callers decode it according to Kind.
type Batch struct {
	ID         string
	CreatedAt  time.Time
	University string
	Topic      string
	Kind       string
	Count      int
	Source     string
	Attempts   int
	Items      json.RawMessage
}

// BatchRepo stores generated batches.
type BatchRepo interface {
	// Save stores a batch. An empty ID is replaced with a new UUID and a
	// zero CreatedAt with the current time; both are written back.
	Save(ctx context.Context, b *Batch) error

	// Get returns the batch with the given ID or ID prefix, or nil if none
	// matches.
	Get(ctx context.Context, id string) (*Batch, error)

	// List returns batches newest first.
	List(ctx context.Context, limit int) ([]Batch, error)

	// Prune deletes all but the keep most recent batches.
	Prune(ctx context.Context, keep int) (int, error)
}
