// Package sqlite implements the key-value store on a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
	"github.com/dauchezhenri-coder/praxis-backend/migrations"
)

const table = "kv_store"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// KVStore stores blobs in a single SQLite table.
type KVStore struct {
	db *sql.DB
}

// Open opens (or creates) the database file at path, applies pragmas and
// runs the embedded migrations.
func Open(ctx context.Context, path string) (*KVStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open database: %w", err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite: pragma %q: %w", p, err)
		}
	}

	if err := migrations.Up(ctx, db, goose.DialectSQLite3); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}

	return &KVStore{db: db}, nil
}

// Get returns the value stored under key.
// Returns domain.ErrNotFound if the key is absent.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := builder.Select("value").From(table).Where(squirrel.Eq{"key": key}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var value []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		return nil, mapError(err, key)
	}
	return value, nil
}

// Put inserts or replaces the value under key.
func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := builder.Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, value, squirrel.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return mapError(err, key)
	}
	return nil
}

// Delete removes the given keys. Missing keys are ignored.
func (s *KVStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query, args, err := builder.Delete(table).Where(squirrel.Eq{"key": keys}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return mapError(err, fmt.Sprint(keys))
	}
	return nil
}

// Ping checks the database connection.
func (s *KVStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *KVStore) Close() error {
	return s.db.Close()
}

// mapError converts database/sql errors to domain errors.
// Context errors pass through unchanged.
func mapError(err error, key string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("kv %s: %w", key, err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("kv %s: %w", key, domain.ErrNotFound)
	}
	return fmt.Errorf("kv %s: %w", key, err)
}
