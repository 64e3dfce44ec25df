package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dauchezhenri-coder/praxis-backend/internal/adapter/memory"
	"github.com/dauchezhenri-coder/praxis-backend/internal/adapter/postgres"
	"github.com/dauchezhenri-coder/praxis-backend/internal/adapter/redis"
	"github.com/dauchezhenri-coder/praxis-backend/internal/adapter/sqlite"
	"github.com/dauchezhenri-coder/praxis-backend/internal/config"
)

// Store is the key-value backend holding the persisted state blobs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// OpenStore connects to the configured storage driver, applying migrations
// for the SQL backends.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, error) {
	log := logger.With(slog.String("driver", cfg.Storage.Driver))

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory storage, state is lost on exit")
		return memory.NewKVStore(memory.WithQuota(cfg.Storage.QuotaBytes)), nil

	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		log.Info("storage ready", slog.String("path", cfg.Storage.SQLitePath))
		return store, nil

	case config.DriverPostgres:
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return nil, err
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		log.Info("storage ready", slog.Int("max_conns", int(cfg.Database.MaxConns)))
		return postgres.NewKVStore(pool), nil

	case config.DriverRedis:
		store, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("open redis: %w", err)
		}
		log.Info("storage ready", slog.String("addr", cfg.Redis.Addr))
		return store, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
