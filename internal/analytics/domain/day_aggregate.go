package domain

import (
	"sort"
	"time"

	journal "github.com/felixgeelhaar/quill/internal/journal/domain"
)

// DayAggregate is the per-local-calendar-day rollup of one or more
// entries. Aggregates are derived, recomputed per request, and never
// persisted by the engine.
type DayAggregate struct {
	Date         LocalDate
	TotalWords   int
	EntryCount   int
	RatedEntries int
	// AverageMood is the mean of non-nil mood ratings for the day,
	// nil when no entry that day was rated.
	AverageMood *float64
}

// MeetsGoal reports whether the day's total reached the word goal.
func (d DayAggregate) MeetsGoal(goal int) bool {
	return d.TotalWords >= goal
}

// BucketByDay normalizes entries into one aggregate per local calendar
// day. Input order does not matter; the result is sorted by date
// ascending and covers exactly the days touched by at least one entry.
func BucketByDay(entries []journal.Entry, loc *time.Location) []DayAggregate {
	if loc == nil {
		loc = time.UTC
	}

	type accumulator struct {
		totalWords int
		entryCount int
		moodSum    int
		moodCount  int
	}

	buckets := make(map[LocalDate]*accumulator)
	for _, entry := range entries {
		date := LocalDateOf(entry.Timestamp, loc)
		acc := buckets[date]
		if acc == nil {
			acc = &accumulator{}
			buckets[date] = acc
		}
		acc.totalWords += entry.WordCount
		acc.entryCount++
		if entry.Mood != nil {
			acc.moodSum += *entry.Mood
			acc.moodCount++
		}
	}

	days := make([]DayAggregate, 0, len(buckets))
	for date, acc := range buckets {
		day := DayAggregate{
			Date:         date,
			TotalWords:   acc.totalWords,
			EntryCount:   acc.entryCount,
			RatedEntries: acc.moodCount,
		}
		if acc.moodCount > 0 {
			avg := float64(acc.moodSum) / float64(acc.moodCount)
			day.AverageMood = &avg
		}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days
}

// filterDays returns the aggregates whose date falls within [start, end].
func filterDays(days []DayAggregate, start, end LocalDate) []DayAggregate {
	filtered := make([]DayAggregate, 0, len(days))
	for _, day := range days {
		if day.Date.Before(start) || day.Date.After(end) {
			continue
		}
		filtered = append(filtered, day)
	}
	return filtered
}
