// Package timeutil provides calendar-day arithmetic for the rollup engine.
// All values are timezone-naive local calendar days identified by a
// YYYY-MM-DD day key.
package timeutil

import (
	"math"
	"time"
)

// DayKeyLayout is the canonical format for a calendar day key.
const DayKeyLayout = "2006-01-02"

// Midnight truncates a timestamp to the start of its local calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey formats a timestamp as its YYYY-MM-DD day key.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD day key back into a midnight time.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(DayKeyLayout, key)
}

// DaysBefore subtracts n calendar days from t. This is calendar
// subtraction via AddDate, not n*24h, so day keys stay correct across
// DST transitions and month/year rollovers.
func DaysBefore(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, -n)
}

// DaysBetween returns the number of whole calendar days from a to b
// (positive when b is after a). Both are truncated to midnight first,
// and the elapsed duration is rounded so a 23- or 25-hour DST day still
// counts as one calendar day.
func DaysBetween(a, b time.Time) int {
	am := Midnight(a)
	bm := Midnight(b)
	return int(math.Round(bm.Sub(am).Hours() / 24))
}

// WeekdayShort returns the 3-letter day name used as a chart axis label.
func WeekdayShort(t time.Time) string {
	return t.Format("Mon")
}
