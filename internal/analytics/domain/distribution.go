package domain

import (
	"time"

	journal "github.com/felixgeelhaar/quill/internal/journal/domain"
)

// TimeOfDayBoundaries configure the hour cut points for the four time
// slots. Night covers [0, MorningStart); evening runs to midnight.
// These started life as literals in rendering code; they are passed in
// as configuration so the engine can be re-parameterized without code
// changes.
type TimeOfDayBoundaries struct {
	MorningStart   int
	AfternoonStart int
	EveningStart   int
}

// DefaultTimeOfDayBoundaries returns morning [5,12), afternoon [12,18),
// evening [18,24), night [0,5).
func DefaultTimeOfDayBoundaries() TimeOfDayBoundaries {
	return TimeOfDayBoundaries{MorningStart: 5, AfternoonStart: 12, EveningStart: 18}
}

// TimeOfDayCounts holds the per-slot entry counts. Every slot is always
// present, zero-filled when unused.
type TimeOfDayCounts struct {
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Evening   int `json:"evening"`
	Night     int `json:"night"`
}

// DayOfWeekCounts holds the distinct-writing-day counts per weekday.
type DayOfWeekCounts struct {
	Monday    int `json:"monday"`
	Tuesday   int `json:"tuesday"`
	Wednesday int `json:"wednesday"`
	Thursday  int `json:"thursday"`
	Friday    int `json:"friday"`
	Saturday  int `json:"saturday"`
	Sunday    int `json:"sunday"`
}

// TimeOfDayDistribution classifies each entry's local time of day into a
// slot. Time of day counts entries, not days: a user may write in both
// morning and evening of the same day and each session occupies exactly
// one slot.
func TimeOfDayDistribution(entries []journal.Entry, loc *time.Location, boundaries TimeOfDayBoundaries) TimeOfDayCounts {
	if loc == nil {
		loc = time.UTC
	}

	var counts TimeOfDayCounts
	for _, entry := range entries {
		hour := entry.Timestamp.In(loc).Hour()
		switch {
		case hour < boundaries.MorningStart:
			counts.Night++
		case hour < boundaries.AfternoonStart:
			counts.Morning++
		case hour < boundaries.EveningStart:
			counts.Afternoon++
		default:
			counts.Evening++
		}
	}
	return counts
}

// DayOfWeekDistribution counts distinct writing days per weekday. Three
// entries on the same Monday contribute 1 to Monday, not 3: multiple
// sessions in one day represent one writing day.
func DayOfWeekDistribution(days []DayAggregate) DayOfWeekCounts {
	var counts DayOfWeekCounts
	for _, day := range days {
		if day.EntryCount == 0 {
			continue
		}
		switch day.Date.Weekday() {
		case time.Monday:
			counts.Monday++
		case time.Tuesday:
			counts.Tuesday++
		case time.Wednesday:
			counts.Wednesday++
		case time.Thursday:
			counts.Thursday++
		case time.Friday:
			counts.Friday++
		case time.Saturday:
			counts.Saturday++
		case time.Sunday:
			counts.Sunday++
		}
	}
	return counts
}
