// Package application contains the application layer for the analytics bounded context.
package application

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/quill/internal/analytics/application/queries"
	"github.com/felixgeelhaar/quill/internal/analytics/domain"
	journal "github.com/felixgeelhaar/quill/internal/journal/domain"
)

// Service provides a facade over the analytics handlers.
type Service struct {
	getStatisticsHandler *queries.GetStatisticsHandler
	cache                domain.SnapshotCache
	logger               *slog.Logger
}

// NewService creates a new analytics service. The cache may be nil.
func NewService(entries journal.EntrySource, cache domain.SnapshotCache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		getStatisticsHandler: queries.NewGetStatisticsHandler(entries, cache, logger),
		cache:                cache,
		logger:               logger,
	}
}

// GetStatistics returns the statistics snapshot for a user and period.
func (s *Service) GetStatistics(ctx context.Context, query queries.GetStatisticsQuery) (*domain.StatisticsSnapshot, error) {
	return s.getStatisticsHandler.Handle(ctx, query)
}

// InvalidateUser drops the user's cached snapshots after their entries
// changed. A nil cache makes this a no-op.
func (s *Service) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.InvalidateUser(ctx, userID); err != nil {
		return err
	}
	s.logger.Debug("snapshot cache invalidated", "user_id", userID)
	return nil
}
