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

type journalService struct {
	journalRepo repository.JournalEntryRepository
	notifier    ChangeNotifier
	now         func() time.Time
}

// NewJournalService creates a new journal service
func NewJournalService(journalRepo repository.JournalEntryRepository, notifier ChangeNotifier) JournalService {
	return &journalService{
		journalRepo: journalRepo,
		notifier:    notifier,
		now:         time.Now,
	}
}

// GetOverview returns the display-shaped entries, the activity stats and
// the sentiment chart series, all recomputed from the raw entries.
func (s *journalService) GetOverview(ctx context.Context, userID string) (*models.JournalOverview, error) {
	entries, err := s.journalRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entries: %w", err)
	}

	now := s.now()
	today := timeutil.Midnight(now)

	overview := &models.JournalOverview{
		Entries: make([]models.JournalEntryView, 0, len(entries)),
	}

	weekAgo := now.AddDate(0, 0, -7)
	dayKeys := make([]string, 0, len(entries))
	for _, e := range entries {
		overview.Entries = append(overview.Entries, s.entryView(&e, now))
		dayKeys = append(dayKeys, timeutil.DayKey(e.CreatedAt))
		if !e.CreatedAt.Before(weekAgo) {
			overview.Stats.ThisWeek++
		}
	}
	overview.Stats.TotalEntries = len(entries)
	overview.Stats.Streak = rollup.Streaks(today, dayKeys).Current

	// Chart series cover the 28-day window; the weekly series reuses the
	// same samples so the two views never disagree on a day's value.
	monthStart := timeutil.DaysBefore(today, rollup.MonthlyWindowDays-1)
	samples := make([]rollup.WellbeingSample, 0, len(entries))
	for _, e := range entries {
		if e.CreatedAt.Before(monthStart) {
			continue
		}
		samples = append(samples, wellbeingSample(&e))
	}

	overview.WeeklySeries = rollup.WeeklyWellbeingSeries(today, samples)
	overview.MonthlySeries = rollup.MonthlyWellbeingSeries(today, samples)

	return overview, nil
}

// CreateEntry persists a journal entry, deriving the numeric metrics
// from the analysis payload when one is attached. A missing or partial
// analysis degrades to neutral defaults; it never blocks the save.
func (s *journalService) CreateEntry(ctx context.Context, userID string, req *models.CreateJournalEntryRequest) (*models.JournalEntryView, error) {
	mood := scale.MoodOkay
	sentiment := scale.NeutralSentimentScore
	var stress *float64

	if req.Analysis != nil {
		mood = scale.MoodForSentiment(req.Analysis.Sentiment)
		sentiment = scale.SentimentScore(req.Analysis.Sentiment)
		stress = scale.StressValue(req.Analysis.StressLevel)
	}

	entry := &models.JournalEntry{
		UserID:      userID,
		Content:     req.Content,
		Mood:        mood,
		Sentiment:   sentiment,
		StressLevel: stress,
		AIAnalysis:  req.Analysis,
	}

	saved, err := s.journalRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.notifier.Notify(userID)

	view := s.entryView(saved, s.now())
	return &view, nil
}

// entryView shapes an entry for display with the relative date the UI
// shows next to it.
func (s *journalService) entryView(e *models.JournalEntry, now time.Time) models.JournalEntryView {
	sentiment := scale.SentimentNeutral
	if e.AIAnalysis != nil && e.AIAnalysis.Sentiment != "" {
		sentiment = e.AIAnalysis.Sentiment
	}

	mood := e.Mood
	if mood == "" {
		mood = scale.MoodForSentiment(sentiment)
	}

	return models.JournalEntryView{
		ID:        e.ID,
		Date:      relativeDate(now, e.CreatedAt),
		Time:      e.CreatedAt.Format("3:04 PM"),
		Content:   e.Content,
		Mood:      mood,
		Sentiment: sentiment,
		Analysis:  e.AIAnalysis,
		CreatedAt: e.CreatedAt,
	}
}

// wellbeingSample reduces an entry to the numeric metrics the rollup
// engine aggregates. The analysis sentiment label is authoritative when
// present; records without one read as neutral rather than erroring.
func wellbeingSample(e *models.JournalEntry) rollup.WellbeingSample {
	sentiment := scale.SentimentNeutral
	if e.AIAnalysis != nil && e.AIAnalysis.Sentiment != "" {
		sentiment = e.AIAnalysis.Sentiment
	}

	return rollup.WellbeingSample{
		Day:       timeutil.Midnight(e.CreatedAt),
		Sentiment: scale.SentimentScore(sentiment),
		Mood:      scale.MoodValue(e.Mood),
		Stress:    e.StressLevel,
	}
}

func relativeDate(now, t time.Time) string {
	daysAgo := timeutil.DaysBetween(t, now)
	switch {
	case daysAgo <= 0:
		return "Today"
	case daysAgo == 1:
		return "Yesterday"
	case daysAgo < 7:
		return fmt.Sprintf("%d days ago", daysAgo)
	default:
		return t.Format("Jan 2, 2006")
	}
}
