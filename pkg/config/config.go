// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string
	UserID   string

	// Analytics defaults
	Timezone      string
	Period        string
	DailyWordGoal int

	// Journal entry source
	DatabaseDriver string // sqlite or postgres
	DatabaseURL    string
	SQLitePath     string

	// Snapshot cache
	RedisURL string
	CacheTTL time.Duration

	// Cache invalidation events
	RabbitMQURL        string
	InvalidatorEnabled bool
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		UserID:   getEnv("QUILL_USER_ID", "00000000-0000-0000-0000-000000000001"),

		Timezone:      getEnv("QUILL_TIMEZONE", "UTC"),
		Period:        getEnv("QUILL_PERIOD", "30d"),
		DailyWordGoal: getIntEnv("QUILL_DAILY_GOAL", 750),

		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		SQLitePath:     getEnv("QUILL_SQLITE_PATH", defaultSQLitePath()),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: getDurationEnv("QUILL_CACHE_TTL", 15*time.Minute),

		RabbitMQURL:        getEnv("RABBITMQ_URL", ""),
		InvalidatorEnabled: getBoolEnv("QUILL_INVALIDATOR_ENABLED", true),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".quill/journal.db"
	}
	return home + "/.quill/journal.db"
}
