package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/mgconde/todolist-api/internal/store"
)

// Store is a process-local store.Store backed by mutex-guarded maps.
// It is safe for concurrent use. Values are copied on the way in and out
// so callers can never alias the stored bytes.
type Store struct {
	mu       sync.RWMutex
	data     map[string][]byte
	counters map[string]int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		data:     make(map[string][]byte),
		counters: make(map[string]int64),
	}
}

// Get retrieves the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, store.ErrKeyNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Put stores value under key, replacing any existing value.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

// Delete removes the value stored under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return store.ErrKeyNotFound
	}

	delete(s.data, key)
	return nil
}

// Keys returns all keys with the given prefix.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0)
	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// NextID atomically increments the counter stored under counterKey.
// Counters live apart from the data map, so deleting a document never
// resets its ID sequence.
func (s *Store) NextID(ctx context.Context, counterKey string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[counterKey]++
	return s.counters[counterKey], nil
}
