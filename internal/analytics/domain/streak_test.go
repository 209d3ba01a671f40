package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/quill/internal/analytics/domain"
)

func TestStreakHistory_FindsMaximalRuns(t *testing.T) {
	days := []domain.DayAggregate{
		writingDay(date(2026, time.March, 1), 100),
		writingDay(date(2026, time.March, 2), 100),
		writingDay(date(2026, time.March, 3), 100),
		// gap on the 4th
		writingDay(date(2026, time.March, 5), 100),
		writingDay(date(2026, time.March, 6), 100),
	}

	streaks := domain.StreakHistory(days, domain.WroteAnything)

	require.Len(t, streaks, 2)
	assert.Equal(t, domain.Streak{
		StartDate: date(2026, time.March, 1),
		EndDate:   date(2026, time.March, 3),
		Length:    3,
	}, streaks[0])
	assert.Equal(t, domain.Streak{
		StartDate: date(2026, time.March, 5),
		EndDate:   date(2026, time.March, 6),
		Length:    2,
	}, streaks[1])
}

func TestStreakHistory_SingleDayRun(t *testing.T) {
	streaks := domain.StreakHistory(
		[]domain.DayAggregate{writingDay(date(2026, time.March, 1), 100)},
		domain.WroteAnything,
	)

	require.Len(t, streaks, 1)
	assert.Equal(t, 1, streaks[0].Length)
	assert.Equal(t, streaks[0].StartDate, streaks[0].EndDate)
}

func TestStreakHistory_NonQualifyingDayBreaksRun(t *testing.T) {
	// Three consecutive writing days, but the middle one misses the goal.
	days := []domain.DayAggregate{
		writingDay(date(2026, time.March, 1), 800),
		writingDay(date(2026, time.March, 2), 100),
		writingDay(date(2026, time.March, 3), 900),
	}

	plain := domain.StreakHistory(days, domain.WroteAnything)
	require.Len(t, plain, 1)
	assert.Equal(t, 3, plain[0].Length)

	goal := domain.StreakHistory(days, domain.MetWordGoal(750))
	require.Len(t, goal, 2)
	assert.Equal(t, 1, goal[0].Length)
	assert.Equal(t, 1, goal[1].Length)
}

func TestStreakHistory_GoalVsPlainStreak(t *testing.T) {
	// 800, 900, then 10 words: goal streak ends a day earlier.
	days := []domain.DayAggregate{
		writingDay(date(2026, time.March, 1), 800),
		writingDay(date(2026, time.March, 2), 900),
		writingDay(date(2026, time.March, 3), 10),
	}

	assert.Equal(t, 3, domain.LongestStreak(days, domain.WroteAnything))
	assert.Equal(t, 2, domain.LongestStreak(days, domain.MetWordGoal(750)))
}

func TestCurrentStreak_GracePeriod(t *testing.T) {
	days := []domain.DayAggregate{
		writingDay(date(2026, time.March, 8), 100),
		writingDay(date(2026, time.March, 9), 100),
		writingDay(date(2026, time.March, 10), 100),
	}

	t.Run("streak ending today", func(t *testing.T) {
		assert.Equal(t, 3, domain.CurrentStreak(days, domain.WroteAnything, date(2026, time.March, 10)))
	})

	t.Run("streak ending yesterday stays current", func(t *testing.T) {
		assert.Equal(t, 3, domain.CurrentStreak(days, domain.WroteAnything, date(2026, time.March, 11)))
	})

	t.Run("two day gap breaks the streak", func(t *testing.T) {
		assert.Equal(t, 0, domain.CurrentStreak(days, domain.WroteAnything, date(2026, time.March, 12)))
	})

	t.Run("old streak does not count", func(t *testing.T) {
		assert.Equal(t, 0, domain.CurrentStreak(days, domain.WroteAnything, date(2026, time.March, 13)))
	})
}

func TestCurrentStreak_NoQualifyingDays(t *testing.T) {
	assert.Equal(t, 0, domain.CurrentStreak(nil, domain.WroteAnything, date(2026, time.March, 10)))

	unqualified := []domain.DayAggregate{
		{Date: date(2026, time.March, 10), TotalWords: 100, EntryCount: 1},
	}
	assert.Equal(t, 0, domain.CurrentStreak(unqualified, domain.MetWordGoal(750), date(2026, time.March, 10)))
}

func TestTopStreaks(t *testing.T) {
	streaks := []domain.Streak{
		{StartDate: date(2026, time.January, 1), EndDate: date(2026, time.January, 3), Length: 3},
		{StartDate: date(2026, time.February, 1), EndDate: date(2026, time.February, 7), Length: 7},
		{StartDate: date(2026, time.March, 1), EndDate: date(2026, time.March, 3), Length: 3},
		{StartDate: date(2026, time.April, 1), EndDate: date(2026, time.April, 2), Length: 2},
	}

	top := domain.TopStreaks(streaks, 3)

	require.Len(t, top, 3)
	assert.Equal(t, 7, top[0].Length)
	// Equal lengths ordered by more recent end date.
	assert.Equal(t, date(2026, time.March, 3), top[1].EndDate)
	assert.Equal(t, date(2026, time.January, 3), top[2].EndDate)
}

func TestTopStreaks_DoesNotMutateInput(t *testing.T) {
	streaks := []domain.Streak{
		{EndDate: date(2026, time.January, 1), Length: 1},
		{EndDate: date(2026, time.February, 1), Length: 5},
	}

	_ = domain.TopStreaks(streaks, 1)

	assert.Equal(t, 1, streaks[0].Length)
}

func TestLongestStreak_Empty(t *testing.T) {
	assert.Equal(t, 0, domain.LongestStreak(nil, domain.WroteAnything))
}
