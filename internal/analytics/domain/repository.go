package domain

import (
	"context"

	"github.com/google/uuid"
)

// SnapshotCache caches computed snapshots per (user, period). The cache
// is an external collaborator: the engine itself stays stateless and
// invalidation-agnostic. Implementations return (nil, nil) on a miss.
type SnapshotCache interface {
	Get(ctx context.Context, userID uuid.UUID, period Period) (*StatisticsSnapshot, error)
	Set(ctx context.Context, userID uuid.UUID, period Period, snapshot *StatisticsSnapshot) error
	// InvalidateUser drops every cached period for a user, called when
	// entries are created, edited, or deleted.
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}
