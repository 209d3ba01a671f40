// Package queries contains query handlers for the analytics bounded context.
package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/quill/internal/analytics/domain"
	journal "github.com/felixgeelhaar/quill/internal/journal/domain"
)

var ErrInvalidTimezone = errors.New("invalid IANA timezone")

// GetStatisticsQuery requests a statistics snapshot for one user and
// period.
type GetStatisticsQuery struct {
	UserID   uuid.UUID
	Period   domain.Period
	Timezone string // IANA name, UTC when empty
	Goal     int    // daily word goal, default 750
	Now      time.Time
}

// GetStatisticsHandler computes statistics snapshots, consulting the
// cache before recomputing from the entry source.
type GetStatisticsHandler struct {
	entries journal.EntrySource
	cache   domain.SnapshotCache
	logger  *slog.Logger
}

// NewGetStatisticsHandler creates a new get statistics handler. The
// cache may be nil, in which case every query recomputes.
func NewGetStatisticsHandler(entries journal.EntrySource, cache domain.SnapshotCache, logger *slog.Logger) *GetStatisticsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GetStatisticsHandler{
		entries: entries,
		cache:   cache,
		logger:  logger,
	}
}

// Handle executes the get statistics query.
func (h *GetStatisticsHandler) Handle(ctx context.Context, query GetStatisticsQuery) (*domain.StatisticsSnapshot, error) {
	if query.Period == "" {
		query.Period = domain.Period30d
	}
	if !query.Period.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, query.Period)
	}

	loc := time.UTC
	if query.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(query.Timezone)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, query.Timezone)
		}
	}

	// Cache failures degrade to a recompute, never to an error.
	if h.cache != nil {
		cached, err := h.cache.Get(ctx, query.UserID, query.Period)
		if err != nil {
			h.logger.Warn("snapshot cache lookup failed",
				"user_id", query.UserID,
				"period", query.Period,
				"error", err,
			)
		} else if cached != nil {
			return cached, nil
		}
	}

	entries, err := h.entries.ListByUser(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	snapshot := domain.BuildSnapshot(entries, domain.SnapshotParams{
		Period:   query.Period,
		Location: loc,
		Goal:     query.Goal,
		Now:      query.Now,
	})

	if h.cache != nil {
		if err := h.cache.Set(ctx, query.UserID, query.Period, &snapshot); err != nil {
			h.logger.Warn("snapshot cache store failed",
				"user_id", query.UserID,
				"period", query.Period,
				"error", err,
			)
		}
	}

	return &snapshot, nil
}
