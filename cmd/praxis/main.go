// Command praxis serves the study workspace API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) with
// environment overrides. The server stops on SIGINT or SIGTERM.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/dauchezhenri-coder/praxis-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("praxis: %v", err)
	}
}
