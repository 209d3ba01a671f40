package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/quill/internal/journal/domain"
)

// exportRecord is one entry in a journal JSON export.
type exportRecord struct {
	ID         uuid.UUID  `json:"id"`
	UserID     *uuid.UUID `json:"userId"`
	Timestamp  time.Time  `json:"timestamp"`
	WordCount  int        `json:"wordCount"`
	MoodRating *int       `json:"moodRating"`
	Tags       []string   `json:"tags"`
}

// ExportFileSource implements domain.EntrySource from a journal JSON
// export: an array of {id, timestamp, wordCount, moodRating, tags}
// records. Used by the CLI to analyze a journal without a database.
type ExportFileSource struct {
	path string
}

// NewExportFileSource creates a source reading the given export file.
func NewExportFileSource(path string) *ExportFileSource {
	return &ExportFileSource{path: path}
}

// ListByUser loads the export and returns its entries. Records without
// a userId are assumed to belong to the requesting user; records tagged
// with a different userId are skipped.
func (s *ExportFileSource) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export file: %w", err)
	}

	var records []exportRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse export file %s: %w", s.path, err)
	}

	entries := make([]domain.Entry, 0, len(records))
	for _, record := range records {
		owner := userID
		if record.UserID != nil {
			if *record.UserID != userID {
				continue
			}
			owner = *record.UserID
		}
		entries = append(entries, domain.RehydrateEntry(
			record.ID,
			owner,
			record.Timestamp,
			record.WordCount,
			record.MoodRating,
			record.Tags,
		))
	}

	return entries, nil
}

var _ domain.EntrySource = (*ExportFileSource)(nil)
