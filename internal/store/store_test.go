package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{llmEventsTable, batchesTable, countersTable} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.BatchRepo().Save(ctx, &Batch{Topic: "SQL", Kind: "mcq", Count: 5, Source: "llm", Items: json.RawMessage(`[]`)}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	list, err := s.BatchRepo().List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCounters(t *testing.T) {
	s := openTestStore(t)
	c := &counters{db: s.DB()}
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := c.Next(ctx, "events")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	other, err := c.Next(ctx, "batches")
	require.NoError(t, err)
	assert.Equal(t, int64(1), other, "counters are independent")
}

func TestLLMEventsAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "mcq", InputTokens: 100, OutputTokens: 900, LatencyMs: 1200, Success: true, RequestBody: "[user]\nGenerate", ResponseBody: "1. Question"},
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "fill_blank", InputTokens: 120, OutputTokens: 0, LatencyMs: 45000, Success: false, ErrorMessage: "context deadline exceeded", Attempt: 2, ErrorClass: "timeout"},
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "mcq", InputTokens: 80, OutputTokens: 700, LatencyMs: 800, Success: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].Sequence, "newest first")
	assert.Equal(t, int64(1), all[2].Sequence)
	assert.Equal(t, "1. Question", all[2].ResponseBody)
	assert.False(t, all[1].Success)
	assert.Equal(t, "context deadline exceeded", all[1].ErrorMessage)
	assert.Equal(t, 2, all[1].Attempt)
	assert.Equal(t, "timeout", all[1].ErrorClass)
	assert.WithinDuration(t, time.Now(), all[0].Timestamp, time.Minute)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	mcq, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "mcq"})
	require.NoError(t, err)
	assert.Len(t, mcq, 2)

	failed, err := repo.QueryLLMEvents(ctx, QueryOpts{Failed: true})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "fill_blank", failed[0].Purpose)

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: 1, Before: 3})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, int64(2), after[0].Sequence)
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "true_false", Success: true}))

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 1)

	e, err := repo.GetLLMEvent(ctx, all[0].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "true_false", e.Purpose)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Model: "a", Purpose: "mcq", InputTokens: 10, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Model: "a", Purpose: "mcq", InputTokens: 30, OutputTokens: 40, LatencyMs: 300, Success: true},
		{Model: "b", Purpose: "true_false", InputTokens: 5, OutputTokens: 5, LatencyMs: 50, Success: true},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, LLMUsage{Purpose: "mcq", Calls: 2, InputTokens: 40, OutputTokens: 60, AvgLatencyMs: 200}, byPurpose[0])

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, ModelUsage{Model: "b", Calls: 1, InputTokens: 5, OutputTokens: 5}, byModel[1])
}

func TestBatchSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.BatchRepo()
	ctx := context.Background()

	b := &Batch{
		University: "State University",
		Topic:      "loop structures",
		Kind:       "true_false",
		Count:      2,
		Source:     "fallback",
		Attempts:   2,
		Items:      json.RawMessage(`[{"statement":"A do-while loop executes at least once.","answer":true,"explanation":"It checks after."}]`),
	}
	require.NoError(t, repo.Save(ctx, b))
	require.NotEmpty(t, b.ID)
	require.False(t, b.CreatedAt.IsZero())

	got, err := repo.Get(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, b.University, got.University)
	assert.Equal(t, b.Topic, got.Topic)
	assert.Equal(t, b.Kind, got.Kind)
	assert.Equal(t, b.Count, got.Count)
	assert.Equal(t, b.Source, got.Source)
	assert.Equal(t, b.Attempts, got.Attempts)
	assert.JSONEq(t, string(b.Items), string(got.Items))

	byPrefix, err := repo.Get(ctx, b.ID[:8])
	require.NoError(t, err)
	require.NotNil(t, byPrefix)
	assert.Equal(t, b.ID, byPrefix.ID)

	missing, err := repo.Get(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBatchListAndPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.BatchRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Batch{
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Topic:     "networks",
			Kind:      "mcq",
			Count:     5,
			Source:    "llm",
			Items:     json.RawMessage(`[]`),
		})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt), "newest first")

	removed, err := repo.Prune(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.True(t, all[0].CreatedAt.Equal(base.Add(6*time.Minute)))

	// Fewer than keep is a no-op.
	removed, err = repo.Prune(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
