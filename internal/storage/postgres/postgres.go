// Package postgres keeps the key-value store in a single kv table on a pgx pool.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Amrutha2803/employee-list/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ storage.Backend = (*Backend)(nil)

// Querier is the part of *pgxpool.Pool the backend uses.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const createTable = `
	CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

type Backend struct {
	q    Querier
	pool *pgxpool.Pool
}

// New creates the kv table if needed. The pool is owned by the backend and
// closed with it.
func New(ctx context.Context, pool *pgxpool.Pool) (*Backend, error) {
	b, err := newBackend(ctx, pool)
	if err != nil {
		return nil, err
	}
	b.pool = pool
	return b, nil
}

func newBackend(ctx context.Context, q Querier) (*Backend, error) {
	if _, err := q.Exec(ctx, createTable); err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &Backend{q: q}, nil
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := b.q.QueryRow(ctx, `SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return value, nil
}

func (b *Backend) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := b.q.Exec(ctx, `
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (b *Backend) Ping(ctx context.Context) error {
	var one int
	return b.q.QueryRow(ctx, "select 1").Scan(&one)
}

func (b *Backend) Close() error {
	if b.pool != nil {
		b.pool.Close()
	}
	return nil
}
