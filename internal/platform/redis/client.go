package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mgconde/todolist-api/internal/store"
)

// pingTimeout bounds the connection check in NewClient.
const pingTimeout = 5 * time.Second

// NewClient connects to Redis and verifies the connection with a ping.
// db selects the logical database; application data and job records use
// different ones so the namespaces never mix.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s db %d: %v", store.ErrUnavailable, addr, db, err)
	}

	return client, nil
}

// wrapErr converts a go-redis error into the store taxonomy. Anything the
// client reports other than a key miss means the store is unreachable for
// this request.
func wrapErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", store.ErrUnavailable, op, err)
}
