// Package daykey turns calendar dates into storage keys and display strings.
//
// All helpers read the date's own location fields. Nothing here converts to
// UTC: a date at 23:30 in Paris is still that Paris day.
package daykey

import (
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// Format returns the canonical YYYY-MM-DD key for t.
func Format(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// Parse reads a YYYY-MM-DD key and returns midnight of that day in loc.
func Parse(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(layoutISO, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("daykey: parse %q: %w", key, err)
	}
	return t, nil
}

// Midnight truncates t to the start of its calendar day, keeping its location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b share year, month and day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// WeekStart returns Monday 00:00 of the week containing t. Sunday closes the
// week that began six days earlier.
func WeekStart(t time.Time) time.Time {
	wd := int(t.Weekday())
	offset := 1 - wd
	if wd == int(time.Sunday) {
		offset = -6
	}
	return time.Date(t.Year(), t.Month(), t.Day()+offset, 0, 0, 0, 0, t.Location())
}

// SameWeek reports whether a and b fall in the same Monday-first week.
func SameWeek(a, b time.Time) bool {
	return WeekStart(a).Equal(WeekStart(b))
}

// WeekDays returns the seven dates of t's week, Monday through Sunday.
func WeekDays(t time.Time) []time.Time {
	start := WeekStart(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}
