// Package app wires infrastructure and application services together.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	analyticsApp "github.com/felixgeelhaar/quill/internal/analytics/application"
	analyticsDomain "github.com/felixgeelhaar/quill/internal/analytics/domain"
	"github.com/felixgeelhaar/quill/internal/analytics/infrastructure/cache"
	"github.com/felixgeelhaar/quill/internal/analytics/infrastructure/eventbus"
	journal "github.com/felixgeelhaar/quill/internal/journal/domain"
	"github.com/felixgeelhaar/quill/internal/journal/infrastructure/persistence"
	"github.com/felixgeelhaar/quill/pkg/config"
)

// Container holds the initialized services and their connections.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	EntrySource      journal.EntrySource
	SnapshotCache    analyticsDomain.SnapshotCache
	AnalyticsService *analyticsApp.Service
	Invalidator      *eventbus.RabbitMQInvalidator

	sqliteDB   *sql.DB
	pgPool     *pgxpool.Pool
	redisCache *cache.RedisCache
}

// NewContainer initializes the entry source, cache, and analytics service.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	if err := c.initEntrySource(ctx); err != nil {
		return nil, err
	}
	c.initSnapshotCache()

	c.AnalyticsService = analyticsApp.NewService(c.EntrySource, c.SnapshotCache, logger)

	if err := c.initInvalidator(); err != nil {
		c.Close()
		return nil, err
	}

	return c, nil
}

func (c *Container) initEntrySource(ctx context.Context) error {
	switch c.Config.DatabaseDriver {
	case "postgres":
		pool, err := persistence.NewPostgresPool(ctx, c.Config.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		c.pgPool = pool
		c.EntrySource = persistence.NewPostgresEntrySource(pool)
		c.Logger.Debug("using PostgreSQL entry source")

	case "sqlite", "":
		db, err := persistence.OpenSQLite(ctx, c.Config.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open SQLite journal: %w", err)
		}
		c.sqliteDB = db
		c.EntrySource = persistence.NewSQLiteEntrySource(db)
		c.Logger.Debug("using SQLite entry source", "path", c.Config.SQLitePath)

	default:
		return fmt.Errorf("unknown database driver %q", c.Config.DatabaseDriver)
	}
	return nil
}

// initSnapshotCache prefers Redis when configured and falls back to the
// in-process cache.
func (c *Container) initSnapshotCache() {
	if c.Config.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cache.RedisCacheConfig{
			URL:    c.Config.RedisURL,
			TTL:    c.Config.CacheTTL,
			Logger: c.Logger,
		})
		if err == nil {
			c.redisCache = redisCache
			c.SnapshotCache = redisCache
			c.Logger.Debug("using Redis snapshot cache")
			return
		}
		c.Logger.Warn("failed to connect to Redis, using in-memory cache", "error", err)
	}
	c.SnapshotCache = cache.NewMemoryCache(c.Config.CacheTTL)
}

func (c *Container) initInvalidator() error {
	if !c.Config.InvalidatorEnabled || c.Config.RabbitMQURL == "" {
		return nil
	}

	invalidator, err := eventbus.NewRabbitMQInvalidator(eventbus.RabbitMQInvalidatorConfig{
		URL:    c.Config.RabbitMQURL,
		Logger: c.Logger,
	}, c.AnalyticsService)
	if err != nil {
		return fmt.Errorf("failed to start cache invalidator: %w", err)
	}
	c.Invalidator = invalidator
	return nil
}

// Close releases all connections held by the container.
func (c *Container) Close() {
	if c.Invalidator != nil {
		if err := c.Invalidator.Close(); err != nil {
			c.Logger.Warn("failed to close invalidator", "error", err)
		}
	}
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			c.Logger.Warn("failed to close Redis cache", "error", err)
		}
	}
	if c.sqliteDB != nil {
		if err := c.sqliteDB.Close(); err != nil {
			c.Logger.Warn("failed to close SQLite database", "error", err)
		}
	}
	if c.pgPool != nil {
		c.pgPool.Close()
	}
}
