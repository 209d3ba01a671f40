// Package persistence provides read-only entry sources backing the
// analytics engine. The engine never writes entries; these adapters only
// load what the journal storage layer owns.
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/felixgeelhaar/quill/internal/journal/domain"
)

// SQLiteEntrySource implements domain.EntrySource against the journal's
// SQLite database.
type SQLiteEntrySource struct {
	db *sql.DB
}

// NewSQLiteEntrySource creates a new SQLite entry source.
func NewSQLiteEntrySource(db *sql.DB) *SQLiteEntrySource {
	return &SQLiteEntrySource{db: db}
}

// OpenSQLite opens the journal database read-optimized.
// - journal_mode=WAL: Write-Ahead Logging for better concurrency
// - busy_timeout=5000: Wait 5s on lock instead of failing immediately
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?"
	} else {
		dsn += "&"
	}
	dsn += "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// SQLite doesn't support multiple writers, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return db, nil
}

// ListByUser returns all entries for a user ordered by timestamp.
func (s *SQLiteEntrySource) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Entry, error) {
	query := `
		SELECT id, user_id, created_at, word_count, mood_rating, tags
		FROM entries
		WHERE user_id = ?
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var (
			idStr     string
			userStr   string
			createdAt string
			wordCount int
			mood      sql.NullInt64
			tagsJSON  sql.NullString
		)
		if err := rows.Scan(&idStr, &userStr, &createdAt, &wordCount, &mood, &tagsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid entry id %q: %w", idStr, err)
		}
		owner, err := uuid.Parse(userStr)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q: %w", userStr, err)
		}
		timestamp, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid entry timestamp %q: %w", createdAt, err)
		}

		var moodPtr *int
		if mood.Valid {
			rating := int(mood.Int64)
			moodPtr = &rating
		}

		var tags []string
		if tagsJSON.Valid && tagsJSON.String != "" {
			if err := json.Unmarshal([]byte(tagsJSON.String), &tags); err != nil {
				return nil, fmt.Errorf("invalid entry tags %q: %w", tagsJSON.String, err)
			}
		}

		entries = append(entries, domain.RehydrateEntry(id, owner, timestamp, wordCount, moodPtr, tags))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

var _ domain.EntrySource = (*SQLiteEntrySource)(nil)
