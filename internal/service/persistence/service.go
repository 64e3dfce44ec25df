// Package persistence saves and restores the library and progression blobs
// in a key-value store, seeding defaults on first run.
package persistence

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dauchezhenri-coder/praxis-backend/internal/config"
	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service is the persistence gateway. Loads fail only when the store is
// unreachable; saves never fail, they log and carry on.
type Service struct {
	store       kvStore
	log         *slog.Logger
	clock       clockwork.Clock
	libraryKey  string
	progressKey string
	progression config.ProgressionConfig
}

// NewService creates a new persistence gateway.
func NewService(
	log *slog.Logger,
	store kvStore,
	clock clockwork.Clock,
	storageCfg config.StorageConfig,
	progressionCfg config.ProgressionConfig,
) *Service {
	if progressionCfg.XPPerLevel <= 0 {
		progressionCfg.XPPerLevel = domain.DefaultXPPerLevel
	}
	return &Service{
		store:       store,
		log:         log.With("service", "persistence"),
		clock:       clock,
		libraryKey:  storageCfg.LibraryKey(),
		progressKey: storageCfg.ProgressionKey(),
		progression: progressionCfg,
	}
}

func (s *Service) location() *time.Location {
	if s.progression.Location != nil {
		return s.progression.Location
	}
	return time.UTC
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.clock.Now(), s.location())
}
