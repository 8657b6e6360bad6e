package rollup

import (
	"sort"
	"time"

	"github.com/sereneapp/serene-api/internal/timeutil"
)

// StreakState is the derived streak summary for one activity. It is
// recomputed from the full set of activity days on every pass; nothing
// here is persisted.
type StreakState struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
}

// Streaks computes the current and longest consecutive-day streaks from
// a set of activity day keys. Input order doesn't matter and duplicates
// are tolerated. The current streak is anchored at today or yesterday:
// if the most recent activity day is older than that, the streak is
// considered broken and Current is 0.
func Streaks(today time.Time, dayKeys []string) StreakState {
	seen := make(map[string]struct{}, len(dayKeys))
	days := make([]time.Time, 0, len(dayKeys))
	for _, key := range dayKeys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		d, err := timeutil.ParseDayKey(key)
		if err != nil {
			continue
		}
		days = append(days, d)
	}

	if len(days) == 0 {
		return StreakState{}
	}

	// Most recent first.
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	current := 0
	anchor := timeutil.DaysBetween(days[0], today)
	if anchor == 0 || anchor == 1 {
		current = 1
		for i := 1; i < len(days); i++ {
			if timeutil.DaysBetween(days[i], days[i-1]) != 1 {
				break
			}
			current++
		}
	}

	// Longest is scanned over the whole history independently of where
	// the current streak stopped.
	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if timeutil.DaysBetween(days[i], days[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	if current > longest {
		longest = current
	}

	return StreakState{Current: current, Longest: longest}
}
