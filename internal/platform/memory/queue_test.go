package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgconde/todolist-api/internal/task"
)

func TestQueueFIFO(t *testing.T) {
	ctx := context.Background()
	q := NewQueue()

	first := task.Envelope{JobID: "a", Command: task.NewCompleteAllCommand(1)}
	second := task.Envelope{JobID: "b", Command: task.NewCompleteAllCommand(2)}

	require.NoError(t, q.Enqueue(ctx, first))
	require.NoError(t, q.Enqueue(ctx, second))

	got, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestQueueUnbounded(t *testing.T) {
	ctx := context.Background()
	q := NewQueue()

	// Enqueue never fails, no matter how far ahead of the consumer the
	// producer runs.
	const n = 10_000
	for i := 0; i < n; i++ {
		require.NoError(t, q.Enqueue(ctx, task.Envelope{JobID: fmt.Sprintf("job-%d", i)}))
	}

	for i := 0; i < n; i++ {
		env, err := q.Dequeue(ctx)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("job-%d", i), env.JobID)
	}
}

func TestQueueDequeueBlocksUntilWork(t *testing.T) {
	ctx := context.Background()
	q := NewQueue()

	done := make(chan task.Envelope, 1)
	go func() {
		env, err := q.Dequeue(ctx)
		assert.NoError(t, err)
		done <- env
	}()

	// Give the consumer a moment to block, then publish.
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, q.Enqueue(ctx, task.Envelope{JobID: "a"}))

	select {
	case env := <-done:
		assert.Equal(t, "a", env.JobID)
	case <-time.After(time.Second):
		t.Fatal("dequeue did not return after enqueue")
	}
}

func TestQueueDequeueCancelled(t *testing.T) {
	q := NewQueue()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := q.Dequeue(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQueueDequeueCancelledWhileBlocked(t *testing.T) {
	q := NewQueue()

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		_, err := q.Dequeue(ctx)
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("dequeue did not return after cancellation")
	}
}
