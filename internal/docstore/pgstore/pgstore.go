// Package pgstore implements docstore.Collection on a Postgres table holding one
// JSONB document per row.
//
// Tables are created by the migrations in internal/migrate and have the shape
// (id uuid primary key, doc jsonb, created_at, updated_at).
package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"records-api/internal/docstore"
	"records-api/internal/domain"
)

const (
	backend         = "postgres"
	uniqueViolation = "23505"
)

// Collection stores T in a single table.
type Collection[T any] struct {
	pool  *pgxpool.Pool
	name  string
	table string
}

var _ docstore.Collection[struct{}] = (*Collection[struct{}])(nil)

// New binds table as a collection.
func New[T any](pool *pgxpool.Pool, table string) *Collection[T] {
	return &Collection[T]{
		pool:  pool,
		name:  table,
		table: pgx.Identifier{table}.Sanitize(),
	}
}

func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) Find(ctx context.Context) ([]T, error) {
	q := fmt.Sprintf(`SELECT doc FROM %s ORDER BY created_at, id`, c.table)
	rows, err := c.pool.Query(ctx, q)
	if err != nil {
		return nil, c.wrap("find", err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, c.wrap("find", err)
		}
		var doc T
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, c.wrap("find", err)
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, c.wrap("find", err)
	}
	return out, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	q := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, c.table)
	return c.scan("findById", c.pool.QueryRow(ctx, q, id))
}

func (c *Collection[T]) FindOne(ctx context.Context, field, value string) (*T, error) {
	if field == docstore.IDField {
		return c.FindByID(ctx, value)
	}
	q := fmt.Sprintf(`SELECT doc FROM %s WHERE doc ->> $1::text = $2 ORDER BY created_at LIMIT 1`, c.table)
	return c.scan("findOne", c.pool.QueryRow(ctx, q, field, value))
}

func (c *Collection[T]) Create(ctx context.Context, doc T) (*T, error) {
	m, err := toMap(doc)
	if err != nil {
		return nil, c.wrap("create", err)
	}
	id := uuid.NewString()
	m[docstore.IDField] = id
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, c.wrap("create", err)
	}

	q := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb) RETURNING doc`, c.table)
	return c.scan("create", c.pool.QueryRow(ctx, q, id, raw))
}

func (c *Collection[T]) Update(ctx context.Context, id string, fields docstore.Fields) (*T, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	patch := make(map[string]any, len(fields))
	for k, v := range fields {
		if k != docstore.IDField {
			patch[k] = v
		}
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, c.wrap("update", err)
	}

	q := fmt.Sprintf(`
UPDATE %s SET doc = doc || $2::jsonb, updated_at = now()
WHERE id = $1
RETURNING doc
`, c.table)
	return c.scan("update", c.pool.QueryRow(ctx, q, id, raw))
}

func (c *Collection[T]) Append(ctx context.Context, field, value, arrayField string, elem any) (*T, error) {
	raw, err := json.Marshal(elem)
	if err != nil {
		return nil, c.wrap("append", err)
	}

	// The row lock taken by UPDATE serializes concurrent appends to one document.
	set := fmt.Sprintf(`
UPDATE %s
SET doc = jsonb_set(doc, ARRAY[$1::text], COALESCE(doc -> $1::text, '[]'::jsonb) || jsonb_build_array($2::jsonb)),
    updated_at = now()
`, c.table)

	if field == docstore.IDField {
		if _, err := uuid.Parse(value); err != nil {
			return nil, domain.ErrNotFound
		}
		q := set + `WHERE id = $3 RETURNING doc`
		return c.scan("append", c.pool.QueryRow(ctx, q, arrayField, raw, value))
	}
	q := set + fmt.Sprintf(`WHERE id = (SELECT id FROM %s WHERE doc ->> $3::text = $4 ORDER BY created_at LIMIT 1) RETURNING doc`, c.table)
	return c.scan("append", c.pool.QueryRow(ctx, q, arrayField, raw, field, value))
}

func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	q := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING doc`, c.table)
	return c.scan("delete", c.pool.QueryRow(ctx, q, id))
}

func (c *Collection[T]) scan(op string, row pgx.Row) (*T, error) {
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrAlreadyExists
		}
		return nil, c.wrap(op, err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, c.wrap(op, err)
	}
	return &out, nil
}

func (c *Collection[T]) wrap(op string, err error) error {
	return docstore.Wrap(backend, c.name, op, err)
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := make(map[string]any)
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
