package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var batchSelectColumns = []string{
	"id", "created_at", "university", "topic", "kind", "count", "source", "attempts", "items",
}

// batchRepo implements BatchRepo.
type batchRepo struct {
	db *sql.DB
}

func (r *batchRepo) Save(ctx context.Context, b *Batch) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(batchesTable).
		Columns(batchSelectColumns...).
		Values(
			b.ID,
			b.CreatedAt.UTC(),
			b.University,
			b.Topic,
			b.Kind,
			b.Count,
			b.Source,
			b.Attempts,
			string(b.Items),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save batch: %w", err)
	}
	return nil
}

func (r *batchRepo) Get(ctx context.Context, id string) (*Batch, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(batchSelectColumns...).
		From(entsql.Table(batchesTable)).
		Where(entsql.HasPrefix("id", id)).
		OrderBy(entsql.Desc("created_at")).
		Limit(2).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query batch: %w", err)
	}
	defer rows.Close()

	var found []Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range found {
		if found[i].ID == id {
			return &found[i], nil
		}
	}
	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("batch id prefix %q is ambiguous", id)
	}
}

func (r *batchRepo) List(ctx context.Context, limit int) ([]Batch, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(batchSelectColumns...).
		From(entsql.Table(batchesTable)).
		OrderBy(entsql.Desc("created_at"))
	if limit > 0 {
		sel.Limit(limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var out []Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *batchRepo) Prune(ctx context.Context, keep int) (int, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("id").
		From(entsql.Table(batchesTable)).
		OrderBy(entsql.Desc("created_at")).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("query batches for prune: %w", err)
	}
	var stale []any
	for i := 0; rows.Next(); i++ {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan batch id: %w", err)
		}
		if i >= keep {
			stale = append(stale, id)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil // fewer than keep batches exist
	}

	query, args = entsql.Dialect(dialect.SQLite).
		Delete(batchesTable).
		Where(entsql.In("id", stale...)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("prune batches: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func scanBatch(row rowScanner) (*Batch, error) {
	var b Batch
	var itemsJSON string
	err := row.Scan(
		&b.ID,
		&b.CreatedAt,
		&b.University,
		&b.Topic,
		&b.Kind,
		&b.Count,
		&b.Source,
		&b.Attempts,
		&itemsJSON,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan batch: %w", err)
	}
	b.Items = []byte(itemsJSON)
	return &b, nil
}
