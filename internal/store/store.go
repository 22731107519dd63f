package store

import (
	"context"
	"strconv"
)

// Key layout shared by every Store implementation. One key per list holds
// the serialized list document (including its items); counter keys hold the
// monotonic ID sequences.
const (
	// ListKeyPrefix is the prefix for serialized TodoList documents.
	ListKeyPrefix = "todolist:"

	// ListCounterKey is the counter key for TodoList IDs.
	ListCounterKey = "todolist:next_id"
)

// ListKey returns the storage key for a TodoList document.
func ListKey(listID int64) string {
	return ListKeyPrefix + strconv.FormatInt(listID, 10)
}

// ItemCounterKey returns the counter key for item IDs scoped to a list.
func ItemCounterKey(listID int64) string {
	return "todoitem:" + strconv.FormatInt(listID, 10) + ":next_id"
}

// Store is the key-value persistence contract shared by the in-memory and
// Redis backends. There are no transactions across keys: every mutation is
// a full read-modify-write of a single document, and the last writer wins.
type Store interface {
	// Get retrieves the value stored under key.
	// Returns ErrKeyNotFound if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any existing value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key.
	// Returns ErrKeyNotFound if the key is absent.
	Delete(ctx context.Context, key string) error

	// Keys returns all keys with the given prefix, in no particular order.
	// Counter keys are included; callers filter them out.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// NextID atomically increments the counter stored under counterKey and
	// returns the new value. The first call on a fresh counter returns 1.
	// Counters only ever grow, so IDs are never reused after deletion.
	NextID(ctx context.Context, counterKey string) (int64, error)
}
