package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sereneapp/serene-api/internal/models"
	"github.com/sereneapp/serene-api/internal/repository"
	"github.com/sereneapp/serene-api/internal/rollup"
	"github.com/sereneapp/serene-api/internal/scale"
	"github.com/sereneapp/serene-api/internal/timeutil"
)

type moodService struct {
	moodRepo repository.MoodEntryRepository
	notifier ChangeNotifier
	now      func() time.Time
}

// NewMoodService creates a new mood service
func NewMoodService(moodRepo repository.MoodEntryRepository, notifier ChangeNotifier) MoodService {
	return &moodService{
		moodRepo: moodRepo,
		notifier: notifier,
		now:      time.Now,
	}
}

// GetOverview recomputes today's mood plus the weekly and monthly chart
// series from the raw entries. Nothing derived is cached here; every
// call re-reads the window and rebuilds the series from scratch.
func (s *moodService) GetOverview(ctx context.Context, userID string) (*models.MoodOverview, error) {
	today := timeutil.Midnight(s.now())
	todayKey := timeutil.DayKey(today)

	overview := &models.MoodOverview{}

	todayEntry, err := s.moodRepo.GetForDay(ctx, userID, todayKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's mood: %w", err)
	}
	if todayEntry != nil {
		overview.TodaysMood = todayEntry.Mood
	}

	// One fetch covers the 28-day window; the weekly series is the tail
	// of the same data.
	monthStart := timeutil.DayKey(timeutil.DaysBefore(today, rollup.MonthlyWindowDays-1))
	entries, err := s.moodRepo.GetByUserIDAndDateRange(ctx, userID, monthStart, todayKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entries: %w", err)
	}

	// Entries come back ordered by created_at within each day, so the
	// last write per day wins; stray duplicate rows for a day never
	// double-count.
	byDay := make(map[string][]float64, len(entries))
	for _, e := range entries {
		byDay[e.EntryDate] = []float64{float64(e.MoodValue)}
	}

	samples := make([]rollup.DatedValue, 0, len(byDay))
	for key, values := range byDay {
		day, err := timeutil.ParseDayKey(key)
		if err != nil {
			continue
		}
		samples = append(samples, rollup.DatedValue{Day: day, Value: values[0]})
	}

	overview.WeeklySeries = rollup.DailySeries(today, byDay, rollup.WeeklyWindowDays)
	overview.MonthlySeries = rollup.MonthlyAverages(today, samples)

	return overview, nil
}

// SaveMood records or replaces today's mood entry and signals the
// change so dependent dashboards recompute.
func (s *moodService) SaveMood(ctx context.Context, userID string, mood scale.Mood) (*models.MoodEntry, error) {
	entry := &models.MoodEntry{
		UserID:    userID,
		Mood:      mood,
		MoodValue: scale.MoodValue(mood),
		EntryDate: timeutil.DayKey(s.now()),
	}

	saved, err := s.moodRepo.UpsertForDay(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save mood: %w", err)
	}

	s.notifier.Notify(userID)
	return saved, nil
}
