package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgconde/todolist-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, config.BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "localhost:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 1, cfg.Store.Redis.DataDB)
	assert.Equal(t, 0, cfg.Store.Redis.JobDB)
	assert.True(t, cfg.Worker.Embedded)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TODO_SERVER_PORT", "9090")
	t.Setenv("TODO_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TODO_STORE_BACKEND", "redis")
	t.Setenv("TODO_STORE_REDIS_ADDR", "redis.internal:6379")
	t.Setenv("TODO_WORKER_EMBEDDED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, config.BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "redis.internal:6379", cfg.Store.Redis.Addr)
	assert.False(t, cfg.Worker.Embedded)
}

func TestLoadMemoryBackendForcesEmbeddedWorker(t *testing.T) {
	t.Setenv("TODO_STORE_BACKEND", "memory")
	t.Setenv("TODO_WORKER_EMBEDDED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Worker.Embedded)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("TODO_STORE_BACKEND", "etcd")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("TODO_SERVER_LOG_LEVEL", "verbose")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
