package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const table = "kv_store"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// KVStore stores blobs in the kv_store table.
type KVStore struct {
	pool *pgxpool.Pool
}

// NewKVStore creates a store on an open pool. Migrations must already be applied.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool}
}

// Get returns the value stored under key.
// Returns domain.ErrNotFound if the key is absent.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.Select("value").From(table).Where(squirrel.Eq{"key": key}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var value []byte
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return nil, mapError(err, key)
	}
	return value, nil
}

// Put inserts or replaces the value under key.
func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := psql.Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, value, squirrel.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return mapError(err, key)
	}
	return nil
}

// Delete removes the given keys. Missing keys are ignored.
func (s *KVStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query, args, err := psql.Delete(table).Where(squirrel.Eq{"key": keys}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return mapError(err, fmt.Sprint(keys))
	}
	return nil
}

// Ping checks the pool.
func (s *KVStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the pool.
func (s *KVStore) Close() error {
	s.pool.Close()
	return nil
}
