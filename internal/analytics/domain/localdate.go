// Package domain contains the writing analytics engine: pure,
// deterministic computations that turn a chronological entry list into
// the derived statistics consumed by dashboards.
package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidLocalDate = errors.New("invalid local date, expected YYYY-MM-DD")

// LocalDate is a calendar date in the user's local timezone. All derived
// metrics key on local calendar days, never on UTC instants; a LocalDate
// carries no timezone state of its own.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// LocalDateOf extracts the local calendar date of an instant in the
// given location.
func LocalDateOf(t time.Time, loc *time.Location) LocalDate {
	if loc == nil {
		loc = time.UTC
	}
	year, month, day := t.In(loc).Date()
	return LocalDate{Year: year, Month: month, Day: day}
}

// ParseLocalDate parses a YYYY-MM-DD date key.
func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return LocalDate{}, fmt.Errorf("%w: %q", ErrInvalidLocalDate, s)
	}
	year, month, day := t.Date()
	return LocalDate{Year: year, Month: month, Day: day}, nil
}

// String formats the date as its YYYY-MM-DD key.
func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether the date is the zero value.
func (d LocalDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// normalized returns the date anchored at UTC midnight. UTC has no DST
// transitions, so day arithmetic on it is exact.
func (d LocalDate) normalized() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Next returns the following calendar day.
func (d LocalDate) Next() LocalDate {
	return d.AddDays(1)
}

// Prev returns the preceding calendar day.
func (d LocalDate) Prev() LocalDate {
	return d.AddDays(-1)
}

// AddDays returns the date n calendar days away, handling month and year
// boundaries.
func (d LocalDate) AddDays(n int) LocalDate {
	year, month, day := d.normalized().AddDate(0, 0, n).Date()
	return LocalDate{Year: year, Month: month, Day: day}
}

// Compare orders two dates: -1 if d is earlier, 0 if equal, 1 if later.
func (d LocalDate) Compare(other LocalDate) int {
	return d.normalized().Compare(other.normalized())
}

// Before reports whether d is earlier than other.
func (d LocalDate) Before(other LocalDate) bool {
	return d.Compare(other) < 0
}

// After reports whether d is later than other.
func (d LocalDate) After(other LocalDate) bool {
	return d.Compare(other) > 0
}

// Equal reports whether d and other are the same calendar day.
func (d LocalDate) Equal(other LocalDate) bool {
	return d.Compare(other) == 0
}

// DaysUntil returns the number of calendar days from d to other,
// negative when other is earlier.
func (d LocalDate) DaysUntil(other LocalDate) int {
	return int(other.normalized().Sub(d.normalized()).Hours() / 24)
}

// Weekday returns the day of the week for the date.
func (d LocalDate) Weekday() time.Weekday {
	return d.normalized().Weekday()
}

// MarshalJSON serializes the date as its YYYY-MM-DD key.
func (d LocalDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a YYYY-MM-DD date key.
func (d *LocalDate) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidLocalDate, data)
	}
	parsed, err := ParseLocalDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
