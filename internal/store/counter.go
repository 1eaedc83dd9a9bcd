package store

import (
	"context"
	"database/sql"
	"fmt"
)

// counters hands out per-name monotonic numbers that survive restarts.
// Event sequences use them so that ordering does not depend on row IDs.
type counters struct {
	db *sql.DB
}

// Next returns the next value of the named counter, starting at 1. The
// upsert runs as one statement, so concurrent callers never share a value.
func (c *counters) Next(ctx context.Context, name string) (int64, error) {
	var v int64
	err := c.db.QueryRowContext(ctx,
		`INSERT INTO `+countersTable+` (name, value) VALUES (?, 1)
		 ON CONFLICT(name) DO UPDATE SET value = value + 1
		 RETURNING value`,
		name,
	).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("next %s value: %w", name, err)
	}
	return v, nil
}
