package domain

import "sort"

// DefaultStreakHistorySize is how many streaks the history keeps for
// display.
const DefaultStreakHistorySize = 5

// Streak is a maximal run of consecutive calendar days satisfying a
// day-level predicate. Length is always (endDate - startDate) + 1 days.
type Streak struct {
	StartDate LocalDate `json:"startDate"`
	EndDate   LocalDate `json:"endDate"`
	Length    int       `json:"length"`
}

// DayPredicate decides whether a day counts toward a streak.
type DayPredicate func(DayAggregate) bool

// WroteAnything qualifies days with at least one entry.
func WroteAnything(day DayAggregate) bool {
	return day.EntryCount > 0
}

// MetWordGoal qualifies days whose word total reached the goal.
func MetWordGoal(goal int) DayPredicate {
	return func(day DayAggregate) bool {
		return day.MeetsGoal(goal)
	}
}

// StreakHistory finds every maximal run of consecutive qualifying days.
// Days must be sorted by date ascending (as produced by BucketByDay).
// Runs are returned in chronological order. Any gap breaks a run; a
// single qualifying day yields a streak of length 1.
func StreakHistory(days []DayAggregate, qualifies DayPredicate) []Streak {
	var streaks []Streak
	var current *Streak

	for _, day := range days {
		if !qualifies(day) {
			if current != nil {
				streaks = append(streaks, *current)
				current = nil
			}
			continue
		}

		if current != nil && day.Date.Equal(current.EndDate.Next()) {
			current.EndDate = day.Date
			current.Length++
			continue
		}

		if current != nil {
			streaks = append(streaks, *current)
		}
		current = &Streak{StartDate: day.Date, EndDate: day.Date, Length: 1}
	}
	if current != nil {
		streaks = append(streaks, *current)
	}

	return streaks
}

// TopStreaks sorts streaks by length descending, breaking ties by more
// recent end date, and truncates to at most n.
func TopStreaks(streaks []Streak, n int) []Streak {
	sorted := make([]Streak, len(streaks))
	copy(sorted, streaks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Length != sorted[j].Length {
			return sorted[i].Length > sorted[j].Length
		}
		return sorted[i].EndDate.After(sorted[j].EndDate)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// LongestStreak returns the maximal run length across the whole history,
// 0 when no day qualifies.
func LongestStreak(days []DayAggregate, qualifies DayPredicate) int {
	longest := 0
	for _, streak := range StreakHistory(days, qualifies) {
		if streak.Length > longest {
			longest = streak.Length
		}
	}
	return longest
}

// CurrentStreak returns the length of the run ending at today or
// yesterday. The one-day grace period keeps a streak current when today
// has not been written yet; it never tolerates gaps inside a run.
func CurrentStreak(days []DayAggregate, qualifies DayPredicate, today LocalDate) int {
	streaks := StreakHistory(days, qualifies)
	if len(streaks) == 0 {
		return 0
	}

	latest := streaks[len(streaks)-1]
	if latest.EndDate.Equal(today) || latest.EndDate.Equal(today.Prev()) {
		return latest.Length
	}
	return 0
}
