// Package cache provides snapshot cache implementations. Snapshots are
// cached per (user, period) and invalidated when the user's entries
// change; the engine itself stays stateless.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/quill/internal/analytics/domain"
)

// DefaultTTL bounds staleness when an invalidation event is missed.
const DefaultTTL = 15 * time.Minute

// cacheKey builds the fully-qualified key for a user and period.
func cacheKey(userID uuid.UUID, period domain.Period) string {
	return "quill:stats:user:" + userID.String() + ":period:" + string(period)
}

// userKeyPrefix is the key prefix shared by all of a user's periods.
func userKeyPrefix(userID uuid.UUID) string {
	return "quill:stats:user:" + userID.String() + ":"
}

// MemoryCache is an in-process snapshot cache with TTL expiry. Safe for
// concurrent use.
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryCacheEntry
}

type memoryCacheEntry struct {
	snapshot  *domain.StatisticsSnapshot
	expiresAt time.Time
}

// NewMemoryCache creates an in-memory snapshot cache. A non-positive
// ttl falls back to DefaultTTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryCacheEntry),
	}
}

// Get returns the cached snapshot, or (nil, nil) on a miss.
func (c *MemoryCache) Get(_ context.Context, userID uuid.UUID, period domain.Period) (*domain.StatisticsSnapshot, error) {
	key := cacheKey(userID, period)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, nil
	}
	return entry.snapshot, nil
}

// Set stores a snapshot with the cache TTL.
func (c *MemoryCache) Set(_ context.Context, userID uuid.UUID, period domain.Period, snapshot *domain.StatisticsSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(userID, period)] = memoryCacheEntry{
		snapshot:  snapshot,
		expiresAt: time.Now().Add(c.ttl),
	}
	return nil
}

// InvalidateUser drops every cached period for the user.
func (c *MemoryCache) InvalidateUser(_ context.Context, userID uuid.UUID) error {
	prefix := userKeyPrefix(userID)

	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

var _ domain.SnapshotCache = (*MemoryCache)(nil)
