package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/quill/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "30d", cfg.Period)
	assert.Equal(t, 750, cfg.DailyWordGoal)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.InvalidatorEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("QUILL_PERIOD", "90d")
	t.Setenv("QUILL_DAILY_GOAL", "500")
	t.Setenv("QUILL_TIMEZONE", "Europe/Berlin")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/quill")
	t.Setenv("QUILL_CACHE_TTL", "5m")
	t.Setenv("QUILL_INVALIDATOR_ENABLED", "false")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "90d", cfg.Period)
	assert.Equal(t, 500, cfg.DailyWordGoal)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "postgres://localhost/quill", cfg.DatabaseURL)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.InvalidatorEnabled)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("QUILL_DAILY_GOAL", "plenty")
	t.Setenv("QUILL_CACHE_TTL", "soon")
	t.Setenv("QUILL_INVALIDATOR_ENABLED", "maybe")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 750, cfg.DailyWordGoal)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.InvalidatorEnabled)
}
