package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mgconde/todolist-api/internal/platform/logger"
	"github.com/mgconde/todolist-api/internal/service"
)

// dequeueRetryDelay is how long the worker backs off after a dequeue
// failure (e.g. the queue's store is briefly unreachable) before polling
// again.
const dequeueRetryDelay = time.Second

// ItemCompleter is the slice of the item service the worker needs.
type ItemCompleter interface {
	CompleteAll(ctx context.Context, listID int64) (service.CompleteAllResult, error)
}

// Worker is the single-threaded consumer of the job queue. It pops one
// envelope at a time, transitions the job record through
// started -> finished/failed, and executes the command against the
// services. Execution failures are recorded on the job, never rethrown:
// the worker always advances to the next job.
type Worker struct {
	queue  Queue
	jobs   JobStore
	items  ItemCompleter
	logger *slog.Logger
}

// NewWorker creates a new Worker.
// It returns an error if any of the required dependencies are nil.
func NewWorker(queue Queue, jobs JobStore, items ItemCompleter, logger *slog.Logger) (*Worker, error) {
	if queue == nil {
		return nil, fmt.Errorf("queue cannot be nil")
	}
	if jobs == nil {
		return nil, fmt.Errorf("job store cannot be nil")
	}
	if items == nil {
		return nil, fmt.Errorf("item service cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &Worker{
		queue:  queue,
		jobs:   jobs,
		items:  items,
		logger: logger.With(slog.String("component", "worker")),
	}, nil
}

// Run processes jobs until ctx is cancelled. Jobs execute strictly
// sequentially in enqueue order. It returns nil on cancellation.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("worker started")

	for {
		env, err := w.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				w.logger.Info("worker stopped")
				return nil
			}

			w.logger.Error("failed to dequeue job", slog.String("error", err.Error()))
			select {
			case <-ctx.Done():
				w.logger.Info("worker stopped")
				return nil
			case <-time.After(dequeueRetryDelay):
			}
			continue
		}

		w.processJob(ctx, env)
	}
}

// processJob handles execution of a single job.
func (w *Worker) processJob(ctx context.Context, env Envelope) {
	log := w.logger.With(
		slog.String("job_id", env.JobID),
		slog.String("job_type", env.Command.Type),
	)

	// Service calls made on behalf of this job log with its ID.
	ctx = logger.WithLogger(ctx, log)

	if err := w.jobs.MarkStarted(ctx, env.JobID); err != nil {
		log.Error("failed to mark job started", slog.String("error", err.Error()))
		return
	}

	log.Info("processing job")

	result, err := w.execute(ctx, env.Command)
	if err != nil {
		log.Error("job execution failed", slog.String("error", err.Error()))
		if markErr := w.jobs.MarkFailed(ctx, env.JobID, err.Error()); markErr != nil {
			log.Error("failed to mark job failed", slog.String("error", markErr.Error()))
		}
		return
	}

	log.Info("job finished")
	if markErr := w.jobs.MarkFinished(ctx, env.JobID, result); markErr != nil {
		log.Error("failed to mark job finished", slog.String("error", markErr.Error()))
	}
}

// execute dispatches the command to the matching service call and returns
// the serialized result. Panics raised during execution are converted to
// errors so a broken job can never take the worker down.
func (w *Worker) execute(ctx context.Context, cmd Command) (result json.RawMessage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()

	switch cmd.Type {
	case CommandTypeCompleteAll:
		res, err := w.items.CompleteAll(ctx, cmd.ListID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(res)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
	}
}
