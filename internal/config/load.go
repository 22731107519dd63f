package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional config file and from
// environment variables with the TODO_ prefix. Environment variables take
// precedence over values from the config file; both override the
// defaults. Returns a populated Config or an error if loading or
// validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout", 10)
	v.SetDefault("store.backend", BackendMemory)
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.data_db", 1)
	v.SetDefault("store.redis.job_db", 0)
	v.SetDefault("worker.embedded", true)

	// Optional config file in the working directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults and env cover everything.
	}

	// Environment variables: TODO_SERVER_PORT, TODO_STORE_BACKEND, ...
	v.SetEnvPrefix("TODO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The memory backend lives in this process only; a detached worker
	// could never see its queue.
	if cfg.Store.Backend == BackendMemory {
		cfg.Worker.Embedded = true
	}

	if cfg.Store.Backend == BackendRedis && cfg.Store.Redis.Addr == "" {
		return nil, fmt.Errorf("invalid configuration: store.redis.addr is required for the redis backend")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
