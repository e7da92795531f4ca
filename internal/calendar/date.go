// Package calendar provides a time-zone free calendar date used for stay
// boundaries.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the textual form accepted by ParseDate and produced by String.
const Layout = "2006-01-02"

// Date is a calendar day without a time of day or location. The zero value
// is not a valid date; use IsZero to detect it.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the date for the given year, month and day. Out of range
// values are normalised the same way time.Date normalises them.
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate parses a YYYY-MM-DD literal.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, fmt.Errorf("calendar: parse %q: %w", value, err)
	}
	return FromTime(t), nil
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.epochDay() > other.epochDay()
}

// DaysUntil returns the number of whole days from d to other. The result is
// negative when other is earlier than d.
func (d Date) DaysUntil(other Date) int {
	return int(other.epochDay() - d.epochDay())
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time().Format(Layout)
}

func (d Date) epochDay() int64 {
	// Midnight UTC is an exact multiple of a day since the epoch.
	return d.Time().Unix() / 86400
}
