package memory

import (
	"context"
	"sync"

	"github.com/mgconde/todolist-api/internal/task"
)

// Queue is a process-local task.Queue: an unbounded FIFO guarded by a
// mutex, like the Redis list backing the remote backend. Enqueue never
// blocks and never fails; Dequeue holds the lock while popping, so each
// envelope is delivered to exactly one consumer.
type Queue struct {
	mu        sync.Mutex
	cond      *sync.Cond
	envelopes []task.Envelope
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends an envelope to the tail of the queue.
func (q *Queue) Enqueue(ctx context.Context, env task.Envelope) error {
	q.mu.Lock()
	q.envelopes = append(q.envelopes, env)
	q.mu.Unlock()

	q.cond.Signal()
	return nil
}

// Dequeue pops the oldest envelope, blocking until work is available or
// ctx is cancelled.
func (q *Queue) Dequeue(ctx context.Context) (task.Envelope, error) {
	// Wake the cond wait when the context ends; Wait itself cannot
	// observe cancellation.
	stop := context.AfterFunc(ctx, func() {
		q.cond.Broadcast()
	})
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.envelopes) == 0 {
		if ctx.Err() != nil {
			return task.Envelope{}, ctx.Err()
		}
		q.cond.Wait()
	}

	env := q.envelopes[0]
	q.envelopes = q.envelopes[1:]
	return env, nil
}
