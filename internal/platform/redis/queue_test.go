package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgconde/todolist-api/internal/platform/redis"
	"github.com/mgconde/todolist-api/internal/task"
)

func newTestQueue(t *testing.T) *redis.Queue {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := redis.NewClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return redis.NewQueue(client)
}

func TestRedisQueueFIFO(t *testing.T) {
	ctx := context.Background()
	q := newTestQueue(t)

	first := task.Envelope{JobID: "job-1", Command: task.NewCompleteAllCommand(1)}
	second := task.Envelope{JobID: "job-2", Command: task.NewCompleteAllCommand(2)}

	require.NoError(t, q.Enqueue(ctx, first))
	require.NoError(t, q.Enqueue(ctx, second))

	env, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, env)

	env, err = q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, env)
}

func TestRedisQueueDequeueBlocksUntilEnqueue(t *testing.T) {
	ctx := context.Background()
	q := newTestQueue(t)

	type result struct {
		env task.Envelope
		err error
	}
	got := make(chan result, 1)
	go func() {
		env, err := q.Dequeue(ctx)
		got <- result{env, err}
	}()

	want := task.Envelope{JobID: "job-1", Command: task.NewCompleteAllCommand(1)}
	require.NoError(t, q.Enqueue(ctx, want))

	select {
	case r := <-got:
		require.NoError(t, r.err)
		assert.Equal(t, want, r.env)
	case <-time.After(2 * time.Second):
		t.Fatal("dequeue did not return after enqueue")
	}
}

func TestRedisQueueDequeueCancelledContext(t *testing.T) {
	q := newTestQueue(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := q.Dequeue(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
