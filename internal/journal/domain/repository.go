package domain

import (
	"context"

	"github.com/google/uuid"
)

// EntrySource provides read access to a user's journal entries.
// Implementations live in infrastructure; the analytics engine never
// writes entries.
type EntrySource interface {
	// ListByUser returns all entries for a user. Order is not guaranteed;
	// callers sort as needed.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Entry, error)
}
