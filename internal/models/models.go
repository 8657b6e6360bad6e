package models

import (
	"time"

	"github.com/sereneapp/serene-api/internal/rollup"
	"github.com/sereneapp/serene-api/internal/scale"
)

// MoodEntry is one self-reported mood for a calendar day. The store
// keeps at most one authoritative entry per (user, entry_date); when
// duplicates exist the most recently created one wins.
type MoodEntry struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Mood      scale.Mood `json:"mood"`
	MoodValue int        `json:"mood_value"`
	EntryDate string     `json:"entry_date"`
	CreatedAt time.Time  `json:"created_at"`
}

// JournalEntry is one free-text journal entry, optionally enriched with
// the analyzer's structured output. Sentiment is the numeric score on
// the -1..1 scale; StressLevel is nil when the entry carried no stress
// reading.
type JournalEntry struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Content     string           `json:"content"`
	Mood        scale.Mood       `json:"mood"`
	Sentiment   float64          `json:"sentiment"`
	StressLevel *float64         `json:"stress_level,omitempty"`
	AIAnalysis  *JournalAnalysis `json:"ai_analysis,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// WellnessLog is one day of self-tracked wellness counts.
type WellnessLog struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	LogDate         string    `json:"log_date"`
	SleepHours      float64   `json:"sleep_hours"`
	WaterGlasses    int       `json:"water_glasses"`
	ExerciseMinutes int       `json:"exercise_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ExerciseCompletion records one finished wellness exercise.
type ExerciseCompletion struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ExerciseID   string    `json:"exercise_id"`
	ExerciseName string    `json:"exercise_name"`
	CompletedAt  time.Time `json:"completed_at"`
}

// SaveMoodRequest records or replaces today's mood.
type SaveMoodRequest struct {
	Mood scale.Mood `json:"mood" binding:"required,oneof=great good okay low bad"`
}

// CreateJournalEntryRequest saves a journal entry; the analysis payload
// is attached when the client already ran the analyzer.
type CreateJournalEntryRequest struct {
	Content  string           `json:"content" binding:"required"`
	Analysis *JournalAnalysis `json:"analysis"`
}

// AnalyzeJournalRequest asks the analyzer collaborator to enrich a
// draft entry. MoodHint is the user's self-reported mood, if any.
type AnalyzeJournalRequest struct {
	Content  string `json:"content" binding:"required"`
	MoodHint string `json:"mood_hint"`
}

// LogWellnessRequest records or replaces today's wellness counts.
type LogWellnessRequest struct {
	SleepHours      float64 `json:"sleep_hours" binding:"min=0,max=24"`
	WaterGlasses    int     `json:"water_glasses" binding:"min=0"`
	ExerciseMinutes int     `json:"exercise_minutes" binding:"min=0"`
}

// CompleteExerciseRequest records a finished exercise.
type CompleteExerciseRequest struct {
	ExerciseID   string `json:"exercise_id" binding:"required"`
	ExerciseName string `json:"exercise_name" binding:"required"`
}

// MoodOverview is the mood dashboard payload: today's mood plus the
// weekly and monthly chart series.
type MoodOverview struct {
	TodaysMood    scale.Mood     `json:"todays_mood,omitempty"`
	WeeklySeries  []rollup.Point `json:"weekly_series"`
	MonthlySeries []rollup.Point `json:"monthly_series"`
}

// JournalEntryView is a journal entry shaped for display, with the
// relative date and clock time the UI shows.
type JournalEntryView struct {
	ID        string           `json:"id"`
	Date      string           `json:"date"`
	Time      string           `json:"time"`
	Content   string           `json:"content"`
	Mood      scale.Mood       `json:"mood"`
	Sentiment scale.Sentiment  `json:"sentiment"`
	Analysis  *JournalAnalysis `json:"analysis,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// JournalStats summarizes journaling activity.
type JournalStats struct {
	TotalEntries int `json:"total_entries"`
	ThisWeek     int `json:"this_week"`
	Streak       int `json:"streak"`
}

// JournalOverview is the journal dashboard payload.
type JournalOverview struct {
	Entries       []JournalEntryView      `json:"entries"`
	Stats         JournalStats            `json:"stats"`
	WeeklySeries  []rollup.WellbeingPoint `json:"weekly_series"`
	MonthlySeries []rollup.WellbeingPoint `json:"monthly_series"`
}

// WellnessSummary is the week-over-week wellness comparison.
type WellnessSummary struct {
	AvgSleep      float64          `json:"avg_sleep"`
	AvgWater      float64          `json:"avg_water"`
	AvgExercise   float64          `json:"avg_exercise"`
	SleepTrend    rollup.Direction `json:"sleep_trend"`
	WaterTrend    rollup.Direction `json:"water_trend"`
	ExerciseTrend rollup.Direction `json:"exercise_trend"`
	DaysLogged    int              `json:"days_logged"`
}

// Snapshot is the full recomputed output surface for one user, published
// by the dashboard service after every recompute.
type Snapshot struct {
	Mood           MoodOverview            `json:"mood"`
	Sentiment      []rollup.WellbeingPoint `json:"sentiment_weekly"`
	Streaks        rollup.StreakState      `json:"streaks"`
	TrendDirection rollup.Direction        `json:"trend_direction"`
	Wellness       *WellnessSummary        `json:"wellness,omitempty"`
	ComputedAt     time.Time               `json:"computed_at"`
}
