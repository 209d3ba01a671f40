package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/quill/internal/analytics/domain"
)

func TestLocalDateOf(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 23:30 UTC on the 14th is already the 15th in Berlin (UTC+1).
	instant := time.Date(2026, 1, 14, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, domain.LocalDate{Year: 2026, Month: time.January, Day: 14},
		domain.LocalDateOf(instant, time.UTC))
	assert.Equal(t, domain.LocalDate{Year: 2026, Month: time.January, Day: 15},
		domain.LocalDateOf(instant, berlin))
}

func TestLocalDateOf_NilLocationDefaultsToUTC(t *testing.T) {
	instant := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, domain.LocalDate{Year: 2026, Month: time.May, Day: 1},
		domain.LocalDateOf(instant, nil))
}

func TestParseLocalDate(t *testing.T) {
	date, err := domain.ParseLocalDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, domain.LocalDate{Year: 2026, Month: time.February, Day: 28}, date)
	assert.Equal(t, "2026-02-28", date.String())
}

func TestParseLocalDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "28-02-2026", "2026/02/28", "2026-13-01"} {
		_, err := domain.ParseLocalDate(input)
		require.Error(t, err, input)
		assert.ErrorIs(t, err, domain.ErrInvalidLocalDate)
	}
}

func TestLocalDate_AddDays(t *testing.T) {
	tests := []struct {
		name string
		date domain.LocalDate
		n    int
		want domain.LocalDate
	}{
		{"within month", domain.LocalDate{Year: 2026, Month: time.March, Day: 10}, 5,
			domain.LocalDate{Year: 2026, Month: time.March, Day: 15}},
		{"month boundary", domain.LocalDate{Year: 2026, Month: time.January, Day: 31}, 1,
			domain.LocalDate{Year: 2026, Month: time.February, Day: 1}},
		{"year boundary", domain.LocalDate{Year: 2025, Month: time.December, Day: 31}, 1,
			domain.LocalDate{Year: 2026, Month: time.January, Day: 1}},
		{"leap day", domain.LocalDate{Year: 2024, Month: time.February, Day: 28}, 1,
			domain.LocalDate{Year: 2024, Month: time.February, Day: 29}},
		{"backwards", domain.LocalDate{Year: 2026, Month: time.March, Day: 1}, -1,
			domain.LocalDate{Year: 2026, Month: time.February, Day: 28}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.AddDays(tt.n))
		})
	}
}

func TestLocalDate_Ordering(t *testing.T) {
	earlier := domain.LocalDate{Year: 2026, Month: time.April, Day: 1}
	later := domain.LocalDate{Year: 2026, Month: time.April, Day: 2}

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.True(t, earlier.Equal(earlier))
	assert.Equal(t, -1, earlier.Compare(later))
	assert.Equal(t, 1, later.Compare(earlier))
	assert.Equal(t, 0, earlier.Compare(earlier))
}

func TestLocalDate_DaysUntil(t *testing.T) {
	start := domain.LocalDate{Year: 2026, Month: time.February, Day: 26}
	end := domain.LocalDate{Year: 2026, Month: time.March, Day: 2}

	assert.Equal(t, 4, start.DaysUntil(end))
	assert.Equal(t, -4, end.DaysUntil(start))
	assert.Equal(t, 0, start.DaysUntil(start))
}

func TestLocalDate_JSONRoundTrip(t *testing.T) {
	date := domain.LocalDate{Year: 2026, Month: time.August, Day: 30}

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-30"`, string(data))

	var decoded domain.LocalDate
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, date, decoded)
}

func TestLocalDate_UnmarshalJSON_Invalid(t *testing.T) {
	var date domain.LocalDate
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &date))
	assert.Error(t, json.Unmarshal([]byte(`42`), &date))
}
