package task

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the current state of a job.
type JobStatus string

// Job lifecycle: queued -> started -> (finished | failed).
const (
	JobStatusQueued   JobStatus = "queued"
	JobStatusStarted  JobStatus = "started"
	JobStatusFinished JobStatus = "finished"
	JobStatusFailed   JobStatus = "failed"
)

// Job is the status record of one asynchronous unit of work. It is created
// at enqueue time and mutated only by the worker. Result is set only when
// the job finished; Error only when it failed. Job records are never
// deleted here; expiration is a store-level concern.
type Job struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Command    Command         `json:"command"`
	Status     JobStatus       `json:"status"`
	Result     json.RawMessage `json:"result,omitempty"`
	Error      string          `json:"error,omitempty"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
	StartedAt  *time.Time      `json:"started_at,omitempty"`
	FinishedAt *time.Time      `json:"finished_at,omitempty"`
}

// NewJob creates a queued Job for the given command with a fresh opaque ID.
func NewJob(cmd Command) *Job {
	return &Job{
		ID:         uuid.NewString(),
		Type:       cmd.Type,
		Command:    cmd,
		Status:     JobStatusQueued,
		EnqueuedAt: time.Now().UTC(),
	}
}

// JobStore persists job status records. Implementations keep jobs in a
// namespace separate from application data.
type JobStore interface {
	// SaveJob persists a new job record.
	SaveJob(ctx context.Context, job *Job) error

	// GetJob returns the current snapshot of a job.
	// Returns store.ErrJobNotFound if the ID is unknown.
	GetJob(ctx context.Context, jobID string) (*Job, error)

	// MarkStarted transitions the job to started.
	MarkStarted(ctx context.Context, jobID string) error

	// MarkFinished transitions the job to finished and records its result.
	MarkFinished(ctx context.Context, jobID string, result json.RawMessage) error

	// MarkFailed transitions the job to failed and records the error
	// description. A failed job stays failed until manually re-enqueued.
	MarkFailed(ctx context.Context, jobID string, errMsg string) error
}

// Envelope is what actually travels through the queue: the job ID plus its
// serializable command. No function values cross the queue boundary.
type Envelope struct {
	JobID   string  `json:"job_id"`
	Command Command `json:"command"`
}

// Queue is a FIFO queue of job envelopes with a single logical consumer.
type Queue interface {
	// Enqueue appends an envelope to the tail of the queue without
	// blocking the caller.
	Enqueue(ctx context.Context, env Envelope) error

	// Dequeue pops the oldest envelope, blocking until work is available
	// or ctx is cancelled. The pop is atomic: an envelope is delivered to
	// exactly one consumer even when several workers race.
	Dequeue(ctx context.Context) (Envelope, error)
}
