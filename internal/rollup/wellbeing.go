package rollup

import (
	"math"
	"time"

	"github.com/sereneapp/serene-api/internal/scale"
	"github.com/sereneapp/serene-api/internal/timeutil"
)

// WellbeingSample is one journal entry reduced to its numeric metrics.
// Stress is nil when the entry carried no stress reading; the neutral
// default is applied per bucket, not per record.
type WellbeingSample struct {
	Day       time.Time
	Sentiment float64
	Mood      int
	Stress    *float64
}

// WellbeingPoint carries the three journal metrics for one bucket. The
// metrics are computed over a single shared partition so they stay
// aligned by day or week index.
type WellbeingPoint struct {
	Label     string     `json:"label"`
	Day       string     `json:"day,omitempty"`
	Sentiment float64    `json:"sentiment"`
	Stress    int        `json:"stress_level"`
	Mood      int        `json:"mood"`
	MoodName  scale.Mood `json:"mood_name"`
}

type wellbeingBucket struct {
	sentiments []float64
	stresses   []float64
	moods      []float64
}

func (b *wellbeingBucket) add(s WellbeingSample) {
	b.sentiments = append(b.sentiments, s.Sentiment)
	b.moods = append(b.moods, float64(s.Mood))
	if s.Stress != nil {
		b.stresses = append(b.stresses, *s.Stress)
	}
}

// point reduces a non-empty bucket: sentiment mean to 2 decimal places,
// mood mean to the nearest integer, stress mean over only the samples
// that carried a reading. A bucket with entries but no stress readings
// still gets the neutral 50 rather than being dropped.
func (b *wellbeingBucket) point(label, day string) WellbeingPoint {
	stress := scale.NeutralStressValue
	if len(b.stresses) > 0 {
		stress = mean(b.stresses)
	}
	mood := int(math.Round(mean(b.moods)))
	return WellbeingPoint{
		Label:     label,
		Day:       day,
		Sentiment: round2(mean(b.sentiments)),
		Stress:    int(math.Round(stress)),
		Mood:      mood,
		MoodName:  scale.MoodForValue(mood),
	}
}

// WeeklyWellbeingSeries groups samples by calendar day over the 7-day
// window ending at today and emits one point per populated day,
// ascending. Unpopulated days are omitted.
func WeeklyWellbeingSeries(today time.Time, samples []WellbeingSample) []WellbeingPoint {
	byDay := make(map[string]*wellbeingBucket)
	for _, s := range samples {
		key := timeutil.DayKey(s.Day)
		b, ok := byDay[key]
		if !ok {
			b = &wellbeingBucket{}
			byDay[key] = b
		}
		b.add(s)
	}

	points := make([]WellbeingPoint, 0, WeeklyWindowDays)
	for i := WeeklyWindowDays - 1; i >= 0; i-- {
		day := timeutil.DaysBefore(today, i)
		key := timeutil.DayKey(day)
		b, ok := byDay[key]
		if !ok || len(b.sentiments) == 0 {
			continue
		}
		points = append(points, b.point(timeutil.WeekdayShort(day), key))
	}
	return points
}

// MonthlyWellbeingSeries accumulates samples into the shared four-week
// partition of the 28-day window and emits one point per non-empty
// bucket, oldest first.
func MonthlyWellbeingSeries(today time.Time, samples []WellbeingSample) []WellbeingPoint {
	var buckets [WeekBuckets]wellbeingBucket
	for _, s := range samples {
		idx, ok := weekBucket(today, s.Day)
		if !ok {
			continue
		}
		buckets[idx].add(s)
	}

	points := make([]WellbeingPoint, 0, WeekBuckets)
	for i := 0; i < WeekBuckets; i++ {
		if len(buckets[i].sentiments) == 0 {
			continue
		}
		points = append(points, buckets[i].point(weekLabel(i), ""))
	}
	return points
}
