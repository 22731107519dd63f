package task_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgconde/todolist-api/internal/platform/memory"
	"github.com/mgconde/todolist-api/internal/store"
	"github.com/mgconde/todolist-api/internal/task"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewDispatcherRequiresDependencies(t *testing.T) {
	jobs := memory.NewJobStore()
	queue := memory.NewQueue()
	logger := newTestLogger()

	_, err := task.NewDispatcher(nil, queue, logger)
	assert.Error(t, err)

	_, err = task.NewDispatcher(jobs, nil, logger)
	assert.Error(t, err)

	_, err = task.NewDispatcher(jobs, queue, nil)
	assert.Error(t, err)

	d, err := task.NewDispatcher(jobs, queue, logger)
	require.NoError(t, err)
	assert.NotNil(t, d)
}

func TestDispatcherEnqueue(t *testing.T) {
	ctx := context.Background()
	jobs := memory.NewJobStore()
	queue := memory.NewQueue()

	d, err := task.NewDispatcher(jobs, queue, newTestLogger())
	require.NoError(t, err)

	cmd := task.NewCompleteAllCommand(7)
	job, err := d.Enqueue(ctx, cmd)
	require.NoError(t, err)

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, task.CommandTypeCompleteAll, job.Type)
	assert.Equal(t, task.JobStatusQueued, job.Status)
	assert.Equal(t, int64(7), job.Command.ListID)
	assert.False(t, job.EnqueuedAt.IsZero())

	// The record is readable before any worker touches the queue.
	stored, err := d.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, task.JobStatusQueued, stored.Status)

	// The queued envelope carries the same job ID and command.
	env, err := queue.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, job.ID, env.JobID)
	assert.Equal(t, cmd, env.Command)
}

func TestDispatcherEnqueueNeverBlocks(t *testing.T) {
	ctx := context.Background()
	jobs := memory.NewJobStore()
	queue := memory.NewQueue()

	d, err := task.NewDispatcher(jobs, queue, newTestLogger())
	require.NoError(t, err)

	// No consumer is running; every enqueue still returns immediately.
	for i := int64(1); i <= 500; i++ {
		_, err := d.Enqueue(ctx, task.NewCompleteAllCommand(i))
		require.NoError(t, err)
	}
}

func TestDispatcherGetJobUnknown(t *testing.T) {
	ctx := context.Background()
	d, err := task.NewDispatcher(memory.NewJobStore(), memory.NewQueue(), newTestLogger())
	require.NoError(t, err)

	_, err = d.GetJob(ctx, "no-such-job")
	assert.ErrorIs(t, err, store.ErrJobNotFound)
}
