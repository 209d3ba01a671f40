package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/felixgeelhaar/quill/internal/journal/domain"
)

// PostgresEntrySource implements domain.EntrySource against the
// journal's PostgreSQL database.
type PostgresEntrySource struct {
	pool *pgxpool.Pool
}

// NewPostgresEntrySource creates a new PostgreSQL entry source.
func NewPostgresEntrySource(pool *pgxpool.Pool) *PostgresEntrySource {
	return &PostgresEntrySource{pool: pool}
}

// NewPostgresPool creates a connection pool from a database URL.
func NewPostgresPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	if url == "" {
		return nil, fmt.Errorf("database URL is required for PostgreSQL")
	}

	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return pool, nil
}

// ListByUser returns all entries for a user ordered by timestamp.
func (s *PostgresEntrySource) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Entry, error) {
	query := `
		SELECT id, user_id, created_at, word_count, mood_rating, tags
		FROM entries
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var entry domain.Entry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Timestamp,
			&entry.WordCount,
			&entry.Mood,
			&entry.Tags,
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

var _ domain.EntrySource = (*PostgresEntrySource)(nil)
