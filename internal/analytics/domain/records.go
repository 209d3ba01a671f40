package domain

import (
	"time"

	"github.com/google/uuid"

	journal "github.com/felixgeelhaar/quill/internal/journal/domain"
)

// EntryRecord is the single entry with the highest word count.
type EntryRecord struct {
	EntryID   uuid.UUID `json:"entryId"`
	Date      LocalDate `json:"date"`
	WordCount int       `json:"wordCount"`
}

// DayRecord is the single day with the highest total word count.
type DayRecord struct {
	Date      LocalDate `json:"date"`
	WordCount int       `json:"wordCount"`
}

// PersonalRecords are the best-known values at computation time. They
// are recomputed from the full history on every request, never
// incrementally maintained. Pointer fields are nil when no qualifying
// data exists.
type PersonalRecords struct {
	LongestEntry      *EntryRecord `json:"longestEntry"`
	MostWordsInDay    *DayRecord   `json:"mostWordsInDay"`
	LongestStreak     int          `json:"longestStreak"`
	LongestGoalStreak int          `json:"longestGoalStreak"`
}

// ComputeRecords scans the full-history entry list and day aggregates
// for personal bests. Ties go to the earliest date: a later entry must
// strictly beat the record to take it.
func ComputeRecords(entries []journal.Entry, days []DayAggregate, loc *time.Location, goal int) PersonalRecords {
	records := PersonalRecords{
		LongestStreak:     LongestStreak(days, WroteAnything),
		LongestGoalStreak: LongestStreak(days, MetWordGoal(goal)),
	}

	for _, entry := range journal.SortEntries(entries) {
		if records.LongestEntry == nil || entry.WordCount > records.LongestEntry.WordCount {
			records.LongestEntry = &EntryRecord{
				EntryID:   entry.ID,
				Date:      LocalDateOf(entry.Timestamp, loc),
				WordCount: entry.WordCount,
			}
		}
	}

	for _, day := range days {
		if records.MostWordsInDay == nil || day.TotalWords > records.MostWordsInDay.WordCount {
			records.MostWordsInDay = &DayRecord{
				Date:      day.Date,
				WordCount: day.TotalWords,
			}
		}
	}

	return records
}
