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

const (
	// queueKey is the Redis list holding pending job envelopes.
	queueKey = "jobs:queue"

	// popTimeout bounds each BRPOP so Dequeue notices ctx cancellation
	// between blocking waits.
	popTimeout = 5 * time.Second
)

// Queue implements task.Queue on a Redis list: LPUSH at the tail, BRPOP
// at the head. BRPOP delivers each envelope to exactly one consumer, so
// several worker processes can share the queue without double-processing.
type Queue struct {
	client *goredis.Client
}

// NewQueue creates a Queue over an established client.
func NewQueue(client *goredis.Client) *Queue {
	return &Queue{client: client}
}

// Enqueue appends an envelope to the tail of the queue.
func (q *Queue) Enqueue(ctx context.Context, env task.Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return store.NewStoreError("job", "enqueue", "failed to encode envelope", err)
	}

	if err := q.client.LPush(ctx, queueKey, data).Err(); err != nil {
		return wrapErr("lpush "+queueKey, err)
	}

	return nil
}

// Dequeue pops the oldest envelope, blocking until work is available or
// ctx is cancelled.
func (q *Queue) Dequeue(ctx context.Context) (task.Envelope, error) {
	for {
		values, err := q.client.BRPop(ctx, popTimeout, queueKey).Result()
		if err != nil {
			if errors.Is(err, goredis.Nil) {
				// Timed out with an empty queue; go around again.
				if ctx.Err() != nil {
					return task.Envelope{}, ctx.Err()
				}
				continue
			}
			if ctx.Err() != nil {
				return task.Envelope{}, ctx.Err()
			}
			return task.Envelope{}, wrapErr("brpop "+queueKey, err)
		}

		// BRPOP returns [key, value].
		var env task.Envelope
		if err := json.Unmarshal([]byte(values[1]), &env); err != nil {
			return task.Envelope{}, store.NewStoreError("job", "dequeue", "failed to decode envelope", err)
		}

		return env, nil
	}
}
