// Command seeder resets the configured storage to the first-run library and
// progression.
//
// Flags:
//
//	--yes   confirm overwriting existing state
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dauchezhenri-coder/praxis-backend/internal/app"
	"github.com/dauchezhenri-coder/praxis-backend/internal/config"
	"github.com/dauchezhenri-coder/praxis-backend/internal/service/persistence"
)

func main() {
	yesFlag := flag.Bool("yes", false, "confirm overwriting existing state")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !*yesFlag {
		logger.Error("refusing to overwrite storage without --yes", slog.String("driver", cfg.Storage.Driver))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	gateway := persistence.NewService(logger, store, clockwork.NewRealClock(), cfg.Storage, cfg.Progression)
	if err := gateway.Reseed(ctx); err != nil {
		logger.Error("reseed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("storage reseeded",
		slog.String("driver", cfg.Storage.Driver),
		slog.String("library_key", cfg.Storage.LibraryKey()),
		slog.String("progression_key", cfg.Storage.ProgressionKey()),
	)
}
