package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mgconde/todolist-api/internal/store"
	"github.com/mgconde/todolist-api/internal/task"
)

// jobKeyPrefix namespaces job records. The client this store is built on
// points at the job database, not the data database.
const jobKeyPrefix = "job:"

// JobStore implements task.JobStore on a Redis client, one JSON document
// per job. Status transitions are read-modify-write with no optimistic
// check: only the worker mutates a job after enqueue.
type JobStore struct {
	client *goredis.Client
}

// NewJobStore creates a JobStore over an established client.
func NewJobStore(client *goredis.Client) *JobStore {
	return &JobStore{client: client}
}

// SaveJob persists a new job record.
func (s *JobStore) SaveJob(ctx context.Context, job *task.Job) error {
	return s.write(ctx, job)
}

// GetJob returns the current snapshot of a job.
func (s *JobStore) GetJob(ctx context.Context, jobID string) (*task.Job, error) {
	data, err := s.client.Get(ctx, jobKeyPrefix+jobID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, store.ErrJobNotFound
		}
		return nil, wrapErr("get job "+jobID, err)
	}

	var job task.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, store.NewStoreError("job", "get", "failed to decode job record", err)
	}

	return &job, nil
}

// MarkStarted transitions the job to started.
func (s *JobStore) MarkStarted(ctx context.Context, jobID string) error {
	return s.update(ctx, jobID, func(job *task.Job) {
		now := time.Now().UTC()
		job.Status = task.JobStatusStarted
		job.StartedAt = &now
	})
}

// MarkFinished transitions the job to finished and records its result.
func (s *JobStore) MarkFinished(ctx context.Context, jobID string, result json.RawMessage) error {
	return s.update(ctx, jobID, func(job *task.Job) {
		now := time.Now().UTC()
		job.Status = task.JobStatusFinished
		job.Result = result
		job.FinishedAt = &now
	})
}

// MarkFailed transitions the job to failed and records the error.
func (s *JobStore) MarkFailed(ctx context.Context, jobID string, errMsg string) error {
	return s.update(ctx, jobID, func(job *task.Job) {
		now := time.Now().UTC()
		job.Status = task.JobStatusFailed
		job.Error = errMsg
		job.FinishedAt = &now
	})
}

func (s *JobStore) update(ctx context.Context, jobID string, apply func(*task.Job)) error {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	apply(job)
	return s.write(ctx, job)
}

func (s *JobStore) write(ctx context.Context, job *task.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return store.NewStoreError("job", "save", "failed to encode job record", err)
	}

	if err := s.client.Set(ctx, jobKeyPrefix+job.ID, data, 0).Err(); err != nil {
		return wrapErr("set job "+job.ID, err)
	}

	return nil
}
