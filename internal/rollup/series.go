// Package rollup implements the temporal aggregation engine: sparse
// daily series, 28-day week-bucket rollups, consecutive-day streaks and
// trend classification over per-user daily records. Everything here is
// pure computation over already-fetched data; the functions are total
// and never perform I/O.
package rollup

import (
	"math"
	"time"

	"github.com/sereneapp/serene-api/internal/timeutil"
)

const (
	// WeeklyWindowDays is the size of the daily chart window.
	WeeklyWindowDays = 7

	// MonthlyWindowDays is the rolling window partitioned into week buckets.
	MonthlyWindowDays = 28

	// WeekBuckets is the number of 7-day buckets in the monthly window.
	WeekBuckets = 4
)

// Point is one chart-ready series point. Day carries the day key for
// daily points and is empty for week buckets.
type Point struct {
	Label string  `json:"label"`
	Day   string  `json:"day,omitempty"`
	Value float64 `json:"value"`
}

// DatedValue is one raw sample attributed to a calendar day.
type DatedValue struct {
	Day   time.Time
	Value float64
}

// DailySeries walks the window ending at today (inclusive) in ascending
// order and emits one point per day that has at least one sample, valued
// at the day's arithmetic mean and labeled with the short weekday name.
// Days with no samples are omitted entirely: a gap in time is a gap in
// the series, never a zero.
func DailySeries(today time.Time, byDay map[string][]float64, window int) []Point {
	points := make([]Point, 0, window)
	for i := window - 1; i >= 0; i-- {
		day := timeutil.DaysBefore(today, i)
		key := timeutil.DayKey(day)
		samples := byDay[key]
		if len(samples) == 0 {
			continue
		}
		points = append(points, Point{
			Label: timeutil.WeekdayShort(day),
			Day:   key,
			Value: mean(samples),
		})
	}
	return points
}

// MonthlyAverages partitions the 28 days ending at today into four
// 7-day buckets and returns one point per non-empty bucket, oldest
// first, labeled "Week 1".."Week 4". Bucket values are arithmetic means
// rounded to the nearest integer (the mood chart policy). Samples
// outside the window are ignored.
func MonthlyAverages(today time.Time, samples []DatedValue) []Point {
	var totals [WeekBuckets]float64
	var counts [WeekBuckets]int

	for _, s := range samples {
		idx, ok := weekBucket(today, s.Day)
		if !ok {
			continue
		}
		totals[idx] += s.Value
		counts[idx]++
	}

	points := make([]Point, 0, WeekBuckets)
	for i := 0; i < WeekBuckets; i++ {
		if counts[i] == 0 {
			continue
		}
		points = append(points, Point{
			Label: weekLabel(i),
			Value: math.Round(totals[i] / float64(counts[i])),
		})
	}
	return points
}

// weekBucket maps a record day onto its oldest-first bucket index within
// the monthly window. Bucket 3 covers today-6..today; daysAgo/7 counts
// back from there and the result is reversed so "Week 1" is the oldest.
func weekBucket(today, day time.Time) (int, bool) {
	daysAgo := timeutil.DaysBetween(day, today)
	if daysAgo < 0 || daysAgo >= MonthlyWindowDays {
		return 0, false
	}
	weekIndex := daysAgo / 7
	if weekIndex > WeekBuckets-1 {
		weekIndex = WeekBuckets - 1
	}
	return WeekBuckets - 1 - weekIndex, true
}

func weekLabel(i int) string {
	return [WeekBuckets]string{"Week 1", "Week 2", "Week 3", "Week 4"}[i]
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// round2 rounds to two decimal places, the sentiment display precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
