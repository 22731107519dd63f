// Package main implements the standalone worker process. It shares the
// Redis store and queue with the API server and consumes jobs until
// stopped. The in-memory backend cannot be shared across processes, so
// the worker refuses to start with it; embedded mode covers that case.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mgconde/todolist-api/internal/config"
	"github.com/mgconde/todolist-api/internal/platform/logger"
	redisplatform "github.com/mgconde/todolist-api/internal/platform/redis"
	"github.com/mgconde/todolist-api/internal/service"
	"github.com/mgconde/todolist-api/internal/task"
)

func main() {
	if err := run(); err != nil {
		slog.Error("worker exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	if cfg.Store.Backend != config.BackendRedis {
		return fmt.Errorf(
			"standalone worker requires the redis backend, got %q; use the embedded worker instead",
			cfg.Store.Backend,
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dataClient, err := redisplatform.NewClient(
		ctx, cfg.Store.Redis.Addr, cfg.Store.Redis.Password, cfg.Store.Redis.DataDB)
	if err != nil {
		return fmt.Errorf("failed to connect to redis data db: %w", err)
	}

	jobClient, err := redisplatform.NewClient(
		ctx, cfg.Store.Redis.Addr, cfg.Store.Redis.Password, cfg.Store.Redis.JobDB)
	if err != nil {
		return fmt.Errorf("failed to connect to redis job db: %w", err)
	}

	kv := redisplatform.NewStore(dataClient)

	lists, err := service.NewTodoListService(kv, log)
	if err != nil {
		return fmt.Errorf("failed to create list service: %w", err)
	}

	items, err := service.NewTodoItemService(kv, lists, log)
	if err != nil {
		return fmt.Errorf("failed to create item service: %w", err)
	}

	worker, err := task.NewWorker(
		redisplatform.NewQueue(jobClient),
		redisplatform.NewJobStore(jobClient),
		items,
		log,
	)
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}

	log.Info("worker connected",
		slog.String("addr", cfg.Store.Redis.Addr),
		slog.Int("job_db", cfg.Store.Redis.JobDB))

	return worker.Run(ctx)
}
