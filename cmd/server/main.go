package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/statframes/internal/config"
	"github.com/nfrund/statframes/internal/logging"
	"github.com/nfrund/statframes/internal/server"
	"github.com/spf13/afero"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// slog is configured from the config, so it is not available yet.
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logging.New(cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, afero.NewOsFs()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
