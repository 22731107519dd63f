package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/mgconde/todolist-api/internal/store"
	"github.com/mgconde/todolist-api/internal/task"
)

// JobStore is a process-local task.JobStore. It is a separate instance
// from the data Store, mirroring the separate logical database job records
// occupy under the Redis backend.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]*task.Job
}

// NewJobStore creates an empty in-memory job store.
func NewJobStore() *JobStore {
	return &JobStore{
		jobs: make(map[string]*task.Job),
	}
}

// SaveJob persists a new job record.
func (s *JobStore) SaveJob(ctx context.Context, job *task.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *job
	s.jobs[job.ID] = &stored
	return nil
}

// GetJob returns a snapshot of the job's current state.
func (s *JobStore) GetJob(ctx context.Context, jobID string) (*task.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return nil, store.ErrJobNotFound
	}

	snapshot := *job
	return &snapshot, nil
}

// MarkStarted transitions the job to started.
func (s *JobStore) MarkStarted(ctx context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return store.ErrJobNotFound
	}

	now := time.Now().UTC()
	job.Status = task.JobStatusStarted
	job.StartedAt = &now
	return nil
}

// MarkFinished transitions the job to finished and records its result.
func (s *JobStore) MarkFinished(ctx context.Context, jobID string, result json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return store.ErrJobNotFound
	}

	now := time.Now().UTC()
	job.Status = task.JobStatusFinished
	job.Result = result
	job.FinishedAt = &now
	return nil
}

// MarkFailed transitions the job to failed and records the error.
func (s *JobStore) MarkFailed(ctx context.Context, jobID string, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return store.ErrJobNotFound
	}

	now := time.Now().UTC()
	job.Status = task.JobStatusFailed
	job.Error = errMsg
	job.FinishedAt = &now
	return nil
}
