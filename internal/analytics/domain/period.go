package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidPeriod = errors.New("invalid analysis period")

// Period selects the analysis window for a snapshot.
type Period string

const (
	Period7d  Period = "7d"
	Period30d Period = "30d"
	Period90d Period = "90d"
	Period1y  Period = "1y"
	PeriodAll Period = "all"
)

// ParsePeriod validates and converts a period string.
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return p, nil
}

// IsValid checks if the period is one of the supported windows.
func (p Period) IsValid() bool {
	switch p {
	case Period7d, Period30d, Period90d, Period1y, PeriodAll:
		return true
	default:
		return false
	}
}

// Days returns the window length in calendar days, 0 for the unbounded
// all-history period.
func (p Period) Days() int {
	switch p {
	case Period7d:
		return 7
	case Period30d:
		return 30
	case Period90d:
		return 90
	case Period1y:
		return 365
	default:
		return 0
	}
}

// Window resolves the inclusive [start, end] date range ending today.
// For the all-history period the start falls back to firstDay, or to
// today when the history is empty.
func (p Period) Window(today LocalDate, firstDay LocalDate) (LocalDate, LocalDate) {
	if p == PeriodAll {
		if firstDay.IsZero() || firstDay.After(today) {
			return today, today
		}
		return firstDay, today
	}
	return today.AddDays(-(p.Days() - 1)), today
}
