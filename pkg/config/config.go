package config

import (
	"fmt"
	"os"
	"strconv"
)

// Cache backend modes.
const (
	CacheModeRedis  = "redis"
	CacheModeMemory = "memory"
	CacheModeNone   = "none"
)

// Config holds all application configuration.
type Config struct {
	// Application
	LogLevel string
	HTTPPort string

	// Cache
	CacheMode     string // "redis", "memory" or "none"
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Daily cache flush (local wall-clock time)
	FlushHour   int
	FlushMinute int

	// Trading store
	PostgresHost string
	PostgresPort string
	PostgresUser string
	PostgresPass string
	PostgresDB   string
	PostgresSSL  string
}

// LoadFromEnv loads configuration from environment variables with defaults.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		// Application defaults
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		HTTPPort: getEnvOrDefault("HTTP_PORT", "8080"),

		// Cache defaults
		CacheMode:     getEnvOrDefault("CACHE_MODE", CacheModeRedis),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getIntOrDefault("REDIS_DB", 0),

		// Flush defaults
		FlushHour:   getIntOrDefault("FLUSH_HOUR", 14),
		FlushMinute: getIntOrDefault("FLUSH_MINUTE", 11),

		// Trading store defaults
		PostgresHost: getEnvOrDefault("POSTGRES_HOST", "localhost"),
		PostgresPort: getEnvOrDefault("POSTGRES_PORT", "5432"),
		PostgresUser: getEnvOrDefault("POSTGRES_USER", "trading"),
		PostgresPass: getEnvOrDefault("POSTGRES_PASSWORD", "trading123"),
		PostgresDB:   getEnvOrDefault("POSTGRES_DB", "trading_results"),
		PostgresSSL:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are valid.
func (c *Config) Validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT cannot be empty")
	}

	switch c.CacheMode {
	case CacheModeRedis, CacheModeMemory, CacheModeNone:
	default:
		return fmt.Errorf("CACHE_MODE must be %q, %q or %q, got %q",
			CacheModeRedis, CacheModeMemory, CacheModeNone, c.CacheMode)
	}

	if c.CacheMode == CacheModeRedis && c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR cannot be empty in redis cache mode")
	}

	if c.FlushHour < 0 || c.FlushHour > 23 {
		return fmt.Errorf("FLUSH_HOUR must be between 0 and 23, got %d", c.FlushHour)
	}

	if c.FlushMinute < 0 || c.FlushMinute > 59 {
		return fmt.Errorf("FLUSH_MINUTE must be between 0 and 59, got %d", c.FlushMinute)
	}

	return nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intVal
}
