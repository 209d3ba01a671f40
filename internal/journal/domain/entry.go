// Package domain contains the domain model for the journal bounded context.
package domain

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEntryNegativeWords = errors.New("entry word count cannot be negative")
	ErrEntryInvalidMood   = errors.New("mood rating must be between 1 and 5")
)

// Mood rating bounds on the 1-5 scale.
const (
	MoodMin = 1
	MoodMax = 5
)

// Entry represents a single journal entry. Entries are immutable once
// created and owned by the storage layer; the analytics engine only
// reads them.
type Entry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Timestamp time.Time
	WordCount int
	Mood      *int // 1-5, nil when the entry was not rated
	Tags      []string
}

// NewEntry creates a validated journal entry.
func NewEntry(userID uuid.UUID, timestamp time.Time, wordCount int, mood *int, tags []string) (Entry, error) {
	if wordCount < 0 {
		return Entry{}, ErrEntryNegativeWords
	}
	if mood != nil && (*mood < MoodMin || *mood > MoodMax) {
		return Entry{}, ErrEntryInvalidMood
	}

	return Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Timestamp: timestamp,
		WordCount: wordCount,
		Mood:      mood,
		Tags:      normalizeTags(tags),
	}, nil
}

// RehydrateEntry recreates an entry from persisted state without validation.
func RehydrateEntry(id, userID uuid.UUID, timestamp time.Time, wordCount int, mood *int, tags []string) Entry {
	return Entry{
		ID:        id,
		UserID:    userID,
		Timestamp: timestamp,
		WordCount: wordCount,
		Mood:      mood,
		Tags:      tags,
	}
}

// IsRated reports whether the entry carries a mood rating.
func (e Entry) IsRated() bool {
	return e.Mood != nil
}

// SortEntries returns a copy of entries ordered by timestamp ascending.
// The engine tolerates unsorted input; everything downstream assumes
// chronological order.
func SortEntries(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// normalizeTags trims, lowercases, and de-duplicates tags while keeping
// first-seen order.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	if len(normalized) == 0 {
		return nil
	}
	return normalized
}
