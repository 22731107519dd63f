package task

import (
	"context"
	"fmt"
	"log/slog"
)

// Dispatcher creates job records and hands their commands to the queue.
// It is the producer side of the async pipeline; the Worker is the
// consumer side.
type Dispatcher struct {
	jobs   JobStore
	queue  Queue
	logger *slog.Logger
}

// NewDispatcher creates a new Dispatcher.
// It returns an error if any of the required dependencies are nil.
func NewDispatcher(jobs JobStore, queue Queue, logger *slog.Logger) (*Dispatcher, error) {
	if jobs == nil {
		return nil, fmt.Errorf("job store cannot be nil")
	}
	if queue == nil {
		return nil, fmt.Errorf("queue cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &Dispatcher{
		jobs:   jobs,
		queue:  queue,
		logger: logger.With(slog.String("component", "dispatcher")),
	}, nil
}

// Enqueue creates a queued job record for the command, appends it to the
// queue, and returns the job immediately. It never blocks on the worker.
func (d *Dispatcher) Enqueue(ctx context.Context, cmd Command) (*Job, error) {
	job := NewJob(cmd)

	// The record exists before the envelope is visible to any worker, so
	// a status poll can never miss a job the queue already carries.
	if err := d.jobs.SaveJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to save job record: %w", err)
	}

	if err := d.queue.Enqueue(ctx, Envelope{JobID: job.ID, Command: cmd}); err != nil {
		return nil, fmt.Errorf("failed to enqueue job: %w", err)
	}

	d.logger.Debug("job enqueued",
		slog.String("job_id", job.ID),
		slog.String("job_type", job.Type))

	return job, nil
}

// GetJob returns the current snapshot of a job's status record.
func (d *Dispatcher) GetJob(ctx context.Context, jobID string) (*Job, error) {
	return d.jobs.GetJob(ctx, jobID)
}
