// Package types implements special types for fintrack.
package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMonthInvalid = errors.New("month must be between 1 and 12")
	ErrYearInvalid  = errors.New("year must be set")
)

// Month is a month in a specific year.
//
// It is the unit of all analytics bucketing: every monthly aggregation
// uses the half-open interval returned by Bounds.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// ParseMonth builds a Month from a 1-indexed month number and a year.
func ParseMonth(year, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, ErrMonthInvalid
	}

	if year == 0 {
		return Month{}, ErrYearInvalid
	}

	return NewMonth(year, time.Month(month)), nil
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, t.Location()))
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Bounds returns the half-open interval [first of month, first of next month)
// that contains exactly the instants belonging to the month.
func (m Month) Bounds() (start, end time.Time) {
	start = time.Time(m)
	return start, start.AddDate(0, 1, 0)
}

// Year returns the year of the month.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// Number returns the 1-indexed month number.
func (m Month) Number() int {
	return int(time.Time(m).Month())
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}
