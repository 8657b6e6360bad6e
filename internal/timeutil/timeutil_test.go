package timeutil

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	d := time.Date(2024, 3, 9, 15, 42, 7, 0, time.UTC)
	if got := DayKey(d); got != "2024-03-09" {
		t.Errorf("DayKey() = %q, want 2024-03-09", got)
	}
}

func TestDaysBeforeRollovers(t *testing.T) {
	tests := []struct {
		name string
		from string
		n    int
		want string
	}{
		{"same month", "2024-03-15", 3, "2024-03-12"},
		{"month rollover", "2024-03-01", 1, "2024-02-29"},
		{"year rollover", "2024-01-01", 1, "2023-12-31"},
		{"four weeks", "2024-04-28", 27, "2024-04-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, err := ParseDayKey(tt.from)
			if err != nil {
				t.Fatalf("ParseDayKey(%q): %v", tt.from, err)
			}
			if got := DayKey(DaysBefore(from, tt.n)); got != tt.want {
				t.Errorf("DaysBefore(%s, %d) = %s, want %s", tt.from, tt.n, got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 5, 8, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 7 {
		t.Errorf("DaysBetween() = %d, want 7", got)
	}
	if got := DaysBetween(b, a); got != -7 {
		t.Errorf("DaysBetween() reversed = %d, want -7", got)
	}
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Skip("tz database unavailable")
	}

	// The 2024-03-10 spring-forward day is 23 hours long.
	a := time.Date(2024, 3, 9, 12, 0, 0, 0, loc)
	b := time.Date(2024, 3, 11, 12, 0, 0, 0, loc)
	if got := DaysBetween(a, b); got != 2 {
		t.Errorf("DaysBetween() across DST = %d, want 2", got)
	}
}

func TestWeekdayShort(t *testing.T) {
	d := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC) // a Monday
	if got := WeekdayShort(d); got != "Mon" {
		t.Errorf("WeekdayShort() = %q, want Mon", got)
	}
}

func TestParseDayKeyInvalid(t *testing.T) {
	if _, err := ParseDayKey("03/09/2024"); err == nil {
		t.Error("ParseDayKey() accepted a non-canonical date")
	}
}
