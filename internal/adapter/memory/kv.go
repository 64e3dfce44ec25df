// Package memory implements the key-value store in process memory.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// KVStore is an in-memory key-value store. An optional quota makes writes
// fail once the total stored size would exceed it, like a full browser
// storage area.
type KVStore struct {
	mu    sync.RWMutex
	data  map[string][]byte
	quota int
}

// Option configures a KVStore.
type Option func(*KVStore)

// WithQuota caps the total number of stored bytes. Zero disables the cap.
func WithQuota(bytes int) Option {
	return func(s *KVStore) { s.quota = bytes }
}

// NewKVStore creates an empty store.
func NewKVStore(opts ...Option) *KVStore {
	s := &KVStore{data: make(map[string][]byte)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a copy of the value stored under key.
// Returns domain.ErrNotFound if the key is absent.
func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("kv %s: %w", key, domain.ErrNotFound)
	}
	return slices.Clone(v), nil
}

// Put stores a copy of value under key.
func (s *KVStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quota > 0 {
		size := len(value)
		for k, v := range s.data {
			if k != key {
				size += len(v)
			}
		}
		if size > s.quota {
			return fmt.Errorf("kv %s: quota of %d bytes exceeded: %w", key, s.quota, domain.ErrStorageWrite)
		}
	}

	s.data[key] = slices.Clone(value)
	return nil
}

// Delete removes the given keys. Missing keys are ignored.
func (s *KVStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}

// Ping always succeeds.
func (s *KVStore) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *KVStore) Close() error { return nil }
