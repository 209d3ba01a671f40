package domain_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/quill/internal/analytics/domain"
	journal "github.com/felixgeelhaar/quill/internal/journal/domain"
)

var testUserID = uuid.MustParse("3f8a1c2e-6b4d-4a9f-9c3e-1d2b5a7e9f01")

func intPtr(v int) *int { return &v }

func date(year int, month time.Month, day int) domain.LocalDate {
	return domain.LocalDate{Year: year, Month: month, Day: day}
}

// entryAt builds an unrated entry at the given UTC instant.
func entryAt(ts time.Time, words int) journal.Entry {
	return journal.RehydrateEntry(uuid.New(), testUserID, ts, words, nil, nil)
}

// ratedEntryAt builds an entry with a mood rating.
func ratedEntryAt(ts time.Time, words, mood int) journal.Entry {
	return journal.RehydrateEntry(uuid.New(), testUserID, ts, words, intPtr(mood), nil)
}

// taggedEntryAt builds an entry with tags.
func taggedEntryAt(ts time.Time, words int, tags ...string) journal.Entry {
	return journal.RehydrateEntry(uuid.New(), testUserID, ts, words, nil, tags)
}

// noon returns a UTC timestamp at 12:00 on the given day.
func noon(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// writingDay builds a qualifying day aggregate with one entry.
func writingDay(d domain.LocalDate, words int) domain.DayAggregate {
	return domain.DayAggregate{Date: d, TotalWords: words, EntryCount: 1}
}

// ratedDay builds a day aggregate with an average mood.
func ratedDay(d domain.LocalDate, words int, mood float64) domain.DayAggregate {
	return domain.DayAggregate{
		Date:         d,
		TotalWords:   words,
		EntryCount:   1,
		RatedEntries: 1,
		AverageMood:  &mood,
	}
}
