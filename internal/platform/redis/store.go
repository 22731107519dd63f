package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mgconde/todolist-api/internal/store"
)

// Store implements store.Store on a Redis client. Documents are plain
// string values (JSON blobs); counters use INCR, which is atomic on the
// server side.
type Store struct {
	client *goredis.Client
}

// NewStore creates a Store over an established client.
func NewStore(client *goredis.Client) *Store {
	return &Store{client: client}
}

// Get retrieves the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, store.ErrKeyNotFound
		}
		return nil, wrapErr("get "+key, err)
	}
	return value, nil
}

// Put stores value under key with no expiration.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return wrapErr("set "+key, err)
	}
	return nil
}

// Delete removes the value stored under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	deleted, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return wrapErr("del "+key, err)
	}
	if deleted == 0 {
		return store.ErrKeyNotFound
	}
	return nil
}

// Keys returns all keys with the given prefix.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys, err := s.client.Keys(ctx, prefix+"*").Result()
	if err != nil {
		return nil, wrapErr("keys "+prefix, err)
	}
	return keys, nil
}

// NextID atomically increments the counter stored under counterKey.
func (s *Store) NextID(ctx context.Context, counterKey string) (int64, error) {
	id, err := s.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return 0, wrapErr("incr "+counterKey, err)
	}
	return id, nil
}
