package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/quill/internal/analytics/domain"
)

func ratedDays(moods ...float64) []domain.DayAggregate {
	days := make([]domain.DayAggregate, 0, len(moods))
	start := date(2026, time.March, 1)
	for i, mood := range moods {
		days = append(days, ratedDay(start.AddDays(i), 100, mood))
	}
	return days
}

func TestClassifyMoodTrend_Improving(t *testing.T) {
	trend := domain.ClassifyMoodTrend(ratedDays(2, 2, 2, 4, 4, 4), domain.DefaultTrendOptions())

	require.NotNil(t, trend)
	assert.Equal(t, domain.TrendImproving, *trend)
}

func TestClassifyMoodTrend_Declining(t *testing.T) {
	trend := domain.ClassifyMoodTrend(ratedDays(5, 5, 5, 2, 2, 2), domain.DefaultTrendOptions())

	require.NotNil(t, trend)
	assert.Equal(t, domain.TrendDeclining, *trend)
}

func TestClassifyMoodTrend_Stable(t *testing.T) {
	trend := domain.ClassifyMoodTrend(ratedDays(3, 3, 3, 3.2, 3, 3), domain.DefaultTrendOptions())

	require.NotNil(t, trend)
	assert.Equal(t, domain.TrendStable, *trend)
}

func TestClassifyMoodTrend_SensitivityIsExclusive(t *testing.T) {
	// A difference of exactly the sensitivity stays stable.
	trend := domain.ClassifyMoodTrend(ratedDays(3, 3.3), domain.TrendOptions{Sensitivity: 0.3})

	require.NotNil(t, trend)
	assert.Equal(t, domain.TrendStable, *trend)
}

func TestClassifyMoodTrend_TooFewRatedDays(t *testing.T) {
	assert.Nil(t, domain.ClassifyMoodTrend(nil, domain.DefaultTrendOptions()))
	assert.Nil(t, domain.ClassifyMoodTrend(ratedDays(4), domain.DefaultTrendOptions()))

	// Unrated days do not count toward the minimum.
	days := []domain.DayAggregate{
		ratedDay(date(2026, time.March, 1), 100, 4),
		writingDay(date(2026, time.March, 2), 100),
		writingDay(date(2026, time.March, 3), 100),
	}
	assert.Nil(t, domain.ClassifyMoodTrend(days, domain.DefaultTrendOptions()))
}

func TestClassifyMoodTrend_IgnoresUnratedDays(t *testing.T) {
	days := []domain.DayAggregate{
		ratedDay(date(2026, time.March, 1), 100, 2),
		writingDay(date(2026, time.March, 2), 100),
		ratedDay(date(2026, time.March, 3), 100, 2),
		writingDay(date(2026, time.March, 4), 100),
		ratedDay(date(2026, time.March, 5), 100, 5),
		ratedDay(date(2026, time.March, 6), 100, 5),
	}

	trend := domain.ClassifyMoodTrend(days, domain.DefaultTrendOptions())

	require.NotNil(t, trend)
	assert.Equal(t, domain.TrendImproving, *trend)
}

func TestClassifyMoodTrend_OddCountSplitsAtMidpoint(t *testing.T) {
	// 5 rated days: first half has 2, second half has 3.
	trend := domain.ClassifyMoodTrend(ratedDays(1, 1, 5, 5, 5), domain.DefaultTrendOptions())

	require.NotNil(t, trend)
	assert.Equal(t, domain.TrendImproving, *trend)
}
