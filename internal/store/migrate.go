package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	llmEventsTable = "llm_request_events"
	batchesTable   = "batches"
	countersTable  = "counters"

	textSize = 2147483647
)

var (
	llmEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: textSize, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: textSize, Default: ""},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "error_class", Type: field.TypeString, Default: ""},
	}
	llmEventsSchema = &schema.Table{
		Name:       llmEventsTable,
		Columns:    llmEventsColumns,
		PrimaryKey: []*schema.Column{llmEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_provider", Columns: []*schema.Column{llmEventsColumns[3]}},
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{llmEventsColumns[5]}},
			{Name: "llmrequestevent_success", Columns: []*schema.Column{llmEventsColumns[9]}},
		},
	}

	batchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Size: 36},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "university", Type: field.TypeString, Default: ""},
		{Name: "topic", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "count", Type: field.TypeInt},
		{Name: "source", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "items", Type: field.TypeString, Size: textSize},
	}
	batchesSchema = &schema.Table{
		Name:       batchesTable,
		Columns:    batchesColumns,
		PrimaryKey: []*schema.Column{batchesColumns[0]},
		Indexes: []*schema.Index{
			{Name: "batch_created_at", Columns: []*schema.Column{batchesColumns[1]}},
			{Name: "batch_kind", Columns: []*schema.Column{batchesColumns[4]}},
		},
	}

	countersColumns = []*schema.Column{
		{Name: "name", Type: field.TypeString, Size: 64},
		{Name: "value", Type: field.TypeInt64, Default: 0},
	}
	countersSchema = &schema.Table{
		Name:       countersTable,
		Columns:    countersColumns,
		PrimaryKey: []*schema.Column{countersColumns[0]},
	}

	tables = []*schema.Table{llmEventsSchema, batchesSchema, countersSchema}
)

// migrate creates or upgrades all tables.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	return m.Create(ctx, tables...)
}
