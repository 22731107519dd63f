// Package main implements the entry point for the todolist API server:
// it loads configuration, sets up logging, wires the store backend,
// services, and job pipeline, and serves the HTTP API.
package main

import (
	"context"
	"log/slog"

	"github.com/mgconde/todolist-api/internal/config"
	"github.com/mgconde/todolist-api/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		exitOnError("failed to load configuration", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		exitOnError("failed to set up logger", err)
	}

	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("backend", cfg.Store.Backend),
		slog.Bool("embedded_worker", cfg.Worker.Embedded))

	app, err := newApplication(context.Background(), cfg, log)
	if err != nil {
		exitOnError("failed to initialize application", err)
	}

	if err := app.run(); err != nil {
		exitOnError("server exited with error", err)
	}
}
