// Package redis implements the key-value store on Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dauchezhenri-coder/praxis-backend/internal/config"
	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// KVStore stores blobs as plain Redis strings without expiry.
type KVStore struct {
	rdb *goredis.Client
}

// Open connects to Redis and pings it.
func Open(ctx context.Context, cfg config.RedisConfig) (*KVStore, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &KVStore{rdb: rdb}, nil
}

// Get returns the value stored under key.
// Returns domain.ErrNotFound if the key is absent.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("kv %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("kv %s: %w", key, err)
	}
	return v, nil
}

// Put stores value under key.
func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("kv %s: %w", key, err)
	}
	return nil
}

// Delete removes the given keys. Missing keys are ignored.
func (s *KVStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("kv %v: %w", keys, err)
	}
	return nil
}

// Ping checks the connection.
func (s *KVStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Close closes the client.
func (s *KVStore) Close() error {
	return s.rdb.Close()
}
