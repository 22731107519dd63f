package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mgconde/todolist-api/internal/api"
	"github.com/mgconde/todolist-api/internal/config"
	"github.com/mgconde/todolist-api/internal/platform/memory"
	redisplatform "github.com/mgconde/todolist-api/internal/platform/redis"
	"github.com/mgconde/todolist-api/internal/service"
	"github.com/mgconde/todolist-api/internal/store"
	"github.com/mgconde/todolist-api/internal/task"
)

// application bundles the wired dependencies of the server process.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	lists      service.TodoListService
	items      service.TodoItemService
	dispatcher *task.Dispatcher
	worker     *task.Worker
}

// newApplication builds the store backend, services, job pipeline, and
// handlers from the loaded configuration.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	kv, jobs, queue, err := buildBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	lists, err := service.NewTodoListService(kv, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create list service: %w", err)
	}

	items, err := service.NewTodoItemService(kv, lists, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create item service: %w", err)
	}

	dispatcher, err := task.NewDispatcher(jobs, queue, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatcher: %w", err)
	}

	app := &application{
		config:     cfg,
		logger:     logger,
		lists:      lists,
		items:      items,
		dispatcher: dispatcher,
	}

	if cfg.Worker.Embedded {
		worker, err := task.NewWorker(queue, jobs, items, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create worker: %w", err)
		}
		app.worker = worker
	}

	return app, nil
}

// buildBackend constructs the store, job store, and queue for the
// configured backend.
func buildBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, task.JobStore, task.Queue, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		logger.Info("using in-memory store backend")
		return memory.New(), memory.NewJobStore(), memory.NewQueue(), nil

	case config.BackendRedis:
		logger.Info("using redis store backend",
			slog.String("addr", cfg.Store.Redis.Addr),
			slog.Int("data_db", cfg.Store.Redis.DataDB),
			slog.Int("job_db", cfg.Store.Redis.JobDB))

		dataClient, err := redisplatform.NewClient(
			ctx, cfg.Store.Redis.Addr, cfg.Store.Redis.Password, cfg.Store.Redis.DataDB)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to redis data db: %w", err)
		}

		jobClient, err := redisplatform.NewClient(
			ctx, cfg.Store.Redis.Addr, cfg.Store.Redis.Password, cfg.Store.Redis.JobDB)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to redis job db: %w", err)
		}

		return redisplatform.NewStore(dataClient),
			redisplatform.NewJobStore(jobClient),
			redisplatform.NewQueue(jobClient),
			nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// run serves HTTP until SIGINT/SIGTERM, then drains in-flight requests.
// With an embedded worker configured it also runs the job consumer for
// the lifetime of the process.
func (app *application) run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := api.NewRouter(app.lists, app.items, app.dispatcher, app.logger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	workerDone := make(chan struct{})
	if app.worker != nil {
		go func() {
			defer close(workerDone)
			if err := app.worker.Run(ctx); err != nil {
				app.logger.Error("worker stopped with error", "error", err)
			}
		}()
	} else {
		close(workerDone)
	}

	serverErr := make(chan error, 1)
	go func() {
		app.logger.Info("server listening", slog.Int("port", app.config.Server.Port))
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		app.logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(app.config.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			app.logger.Error("server shutdown failed", "error", err)
			return err
		}
	}

	<-workerDone
	app.logger.Info("server stopped")
	return nil
}

// exitOnError logs a startup failure and terminates the process.
func exitOnError(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
