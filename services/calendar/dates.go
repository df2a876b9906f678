package calendar

import (
	"fmt"
	"time"

	"fieldcal/models"
)

// ParseDate reads a "2006-01-02" calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// FormatDate is the inverse of ParseDate.
func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

// DateOf drops the clock, keeping the calendar date as seen in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart is the Sunday on or before d.
func WeekStart(d time.Time) time.Time {
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// addMonths moves by whole calendar months, clamping to the last day of the
// target month (Jan 31 + 1 month = Feb 28/29).
func addMonths(d time.Time, n int) time.Time {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	last := first.AddDate(0, 1, -1).Day()
	day := d.Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
