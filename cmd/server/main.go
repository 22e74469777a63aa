// Package main implements the entry point for the Chrono API server, which
// runs timeline trivia games over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/chrono-api/internal/catalog"
	"github.com/phrazzld/chrono-api/internal/config"
	"github.com/phrazzld/chrono-api/internal/platform/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("chrono-api: %v", err)
	}
}

// run loads configuration and the catalog, wires the application and serves
// HTTP until the process is signalled to stop.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("catalog_path", cfg.Catalog.Path),
		slog.Bool("seeded", cfg.Game.Seed != 0))

	cat, err := catalog.Load(ctx, cfg.Catalog.Path, catalog.FilterOptions{
		ExcludedIDs: cfg.Catalog.ExcludedIDs,
	}, l)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	app, err := newApplication(cfg, l, cat)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
