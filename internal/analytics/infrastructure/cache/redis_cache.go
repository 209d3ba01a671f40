package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"

	"github.com/felixgeelhaar/quill/internal/analytics/domain"
)

// RedisCache is a Redis-backed snapshot cache shared across processes.
// Every Redis call runs through a circuit breaker so a cache outage
// degrades to recomputation instead of hammering a dead backend.
type RedisCache struct {
	client  *redis.Client
	ttl     time.Duration
	breaker *gobreaker.CircuitBreaker[any]
	logger  *slog.Logger
}

// RedisCacheConfig configures the Redis snapshot cache.
type RedisCacheConfig struct {
	URL    string
	TTL    time.Duration
	Logger *slog.Logger
}

// NewRedisCache connects to Redis and returns a snapshot cache.
func NewRedisCache(cfg RedisCacheConfig) (*RedisCache, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	settings := gobreaker.Settings{
		Name:    "snapshot-cache",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			cfg.Logger.Info("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &RedisCache{
		client:  redis.NewClient(opts),
		ttl:     cfg.TTL,
		breaker: gobreaker.NewCircuitBreaker[any](settings),
		logger:  cfg.Logger,
	}, nil
}

// Get returns the cached snapshot, or (nil, nil) on a miss.
func (c *RedisCache) Get(ctx context.Context, userID uuid.UUID, period domain.Period) (*domain.StatisticsSnapshot, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		data, err := c.client.Get(ctx, cacheKey(userID, period)).Bytes()
		if err == redis.Nil {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return data, nil
	})
	if err != nil {
		return nil, fmt.Errorf("cache get failed: %w", err)
	}
	if result == nil {
		return nil, nil
	}

	var snapshot domain.StatisticsSnapshot
	if err := json.Unmarshal(result.([]byte), &snapshot); err != nil {
		// A corrupt payload is a miss, not an error.
		c.logger.Warn("discarding undecodable cached snapshot",
			"user_id", userID,
			"period", period,
			"error", err,
		)
		return nil, nil
	}
	return &snapshot, nil
}

// Set stores a snapshot with the cache TTL.
func (c *RedisCache) Set(ctx context.Context, userID uuid.UUID, period domain.Period, snapshot *domain.StatisticsSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = c.breaker.Execute(func() (any, error) {
		return nil, c.client.Set(ctx, cacheKey(userID, period), data, c.ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("cache set failed: %w", err)
	}
	return nil
}

// InvalidateUser drops every cached period for the user.
func (c *RedisCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	_, err := c.breaker.Execute(func() (any, error) {
		iter := c.client.Scan(ctx, 0, userKeyPrefix(userID)+"*", 0).Iterator()
		for iter.Next(ctx) {
			if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
				return nil, err
			}
		}
		return nil, iter.Err()
	})
	if err != nil {
		return fmt.Errorf("cache invalidation failed: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ domain.SnapshotCache = (*RedisCache)(nil)
