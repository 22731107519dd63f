package config

// Backend names accepted by StoreConfig.Backend.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
	Worker WorkerConfig `mapstructure:"worker"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int    `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"gte=0"` // seconds
}

// StoreConfig selects and configures the persistence backend.
type StoreConfig struct {
	Backend string      `mapstructure:"backend" validate:"required,oneof=memory redis"`
	Redis   RedisConfig `mapstructure:"redis"`
}

// RedisConfig contains the Redis connection settings. Application data and
// job records live in separate logical databases.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DataDB   int    `mapstructure:"data_db"  validate:"gte=0"`
	JobDB    int    `mapstructure:"job_db"   validate:"gte=0"`
}

// WorkerConfig controls job processing.
type WorkerConfig struct {
	// Embedded runs the worker inside the server process. It is forced on
	// for the memory backend, which no external process can share.
	Embedded bool `mapstructure:"embedded"`
}
