package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sereneapp/serene-api/internal/models"
	"github.com/sereneapp/serene-api/internal/rollup"
	"github.com/sereneapp/serene-api/internal/scale"
)

// stubMoodService returns a canned overview per call, optionally gating
// the first call until released so tests can order concurrent refreshes.
type stubMoodService struct {
	mu      sync.Mutex
	calls   int
	moods   []scale.Mood
	fail    bool
	entered chan struct{}
	release chan struct{}
}

func (s *stubMoodService) GetOverview(ctx context.Context, userID string) (*models.MoodOverview, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	s.mu.Unlock()

	if call == 1 && s.entered != nil {
		s.entered <- struct{}{}
		<-s.release
	}
	if s.fail {
		return nil, fmt.Errorf("store unavailable")
	}

	mood := s.moods[min(call, len(s.moods))-1]
	return &models.MoodOverview{TodaysMood: mood}, nil
}

func (s *stubMoodService) SaveMood(ctx context.Context, userID string, mood scale.Mood) (*models.MoodEntry, error) {
	return &models.MoodEntry{UserID: userID, Mood: mood}, nil
}

type stubJournalService struct {
	overview models.JournalOverview
}

func (s *stubJournalService) GetOverview(ctx context.Context, userID string) (*models.JournalOverview, error) {
	overview := s.overview
	return &overview, nil
}

func (s *stubJournalService) CreateEntry(ctx context.Context, userID string, req *models.CreateJournalEntryRequest) (*models.JournalEntryView, error) {
	return &models.JournalEntryView{Content: req.Content}, nil
}

type stubWellnessService struct{}

func (s *stubWellnessService) GetWeeklySummary(ctx context.Context, userID string) (*models.WellnessSummary, error) {
	return &models.WellnessSummary{}, nil
}

func (s *stubWellnessService) LogWellness(ctx context.Context, userID string, req *models.LogWellnessRequest) (*models.WellnessLog, error) {
	return &models.WellnessLog{}, nil
}

func (s *stubWellnessService) CompleteExercise(ctx context.Context, userID string, req *models.CompleteExerciseRequest) (*models.ExerciseCompletion, error) {
	return &models.ExerciseCompletion{}, nil
}

func (s *stubWellnessService) GetCompletions(ctx context.Context, userID string) ([]models.ExerciseCompletion, error) {
	return nil, nil
}

func journalOverviewFixture() models.JournalOverview {
	return models.JournalOverview{
		Stats: models.JournalStats{TotalEntries: 3, ThisWeek: 3, Streak: 3},
		WeeklySeries: []rollup.WellbeingPoint{
			{Label: "Mon", Sentiment: -0.5, Mood: 2, Stress: 75},
			{Label: "Tue", Sentiment: -0.3, Mood: 2, Stress: 75},
			{Label: "Wed", Sentiment: 0.5, Mood: 4, Stress: 50},
			{Label: "Thu", Sentiment: 0.7, Mood: 5, Stress: 25},
		},
	}
}

func TestSnapshotComputesOnFirstUse(t *testing.T) {
	mood := &stubMoodService{moods: []scale.Mood{scale.MoodGood}}
	svc := NewDashboardService(mood, &stubJournalService{overview: journalOverviewFixture()}, &stubWellnessService{}, NewInProcessNotifier())

	snap, err := svc.Snapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}

	if snap.Mood.TodaysMood != scale.MoodGood {
		t.Errorf("TodaysMood = %q, want good", snap.Mood.TodaysMood)
	}
	if snap.Streaks.Current != 3 {
		t.Errorf("current streak = %d, want 3", snap.Streaks.Current)
	}
	// Sentiment climbs from -0.5 to 0.7 across the window.
	if snap.TrendDirection != rollup.TrendUp {
		t.Errorf("TrendDirection = %q, want up", snap.TrendDirection)
	}
	if snap.ComputedAt.IsZero() {
		t.Error("ComputedAt not set")
	}

	// Second fetch reuses the published snapshot.
	again, err := svc.Snapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("second Snapshot() error: %v", err)
	}
	if again != snap {
		t.Error("second Snapshot() recomputed instead of reusing the published one")
	}
	if mood.calls != 1 {
		t.Errorf("mood overview fetched %d times, want 1", mood.calls)
	}
}

func TestRefreshFailureRetainsSnapshot(t *testing.T) {
	mood := &stubMoodService{moods: []scale.Mood{scale.MoodGood}}
	svc := NewDashboardService(mood, &stubJournalService{overview: journalOverviewFixture()}, &stubWellnessService{}, NewInProcessNotifier())

	first, err := svc.Refresh(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}

	mood.fail = true
	if _, err := svc.Refresh(context.Background(), "user-1"); err == nil {
		t.Fatal("Refresh() succeeded despite store failure")
	}

	// The failed recompute must not clobber the published snapshot.
	snap, err := svc.Snapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	if snap != first {
		t.Error("failed refresh replaced the published snapshot")
	}
}

func TestStaleRefreshNeverOverwritesNewer(t *testing.T) {
	mood := &stubMoodService{
		moods:   []scale.Mood{scale.MoodBad, scale.MoodGreat},
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewDashboardService(mood, &stubJournalService{overview: journalOverviewFixture()}, &stubWellnessService{}, NewInProcessNotifier())

	// Start an old refresh and park it inside the recompute.
	done := make(chan *models.Snapshot)
	go func() {
		snap, err := svc.Refresh(context.Background(), "user-1")
		if err != nil {
			t.Errorf("stale Refresh() error: %v", err)
		}
		done <- snap
	}()
	<-mood.entered

	// A newer refresh starts and finishes while the old one is parked.
	newer, err := svc.Refresh(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	if newer.Mood.TodaysMood != scale.MoodGreat {
		t.Fatalf("newer TodaysMood = %q, want great", newer.Mood.TodaysMood)
	}

	// Release the old refresh; it must return the newer published
	// snapshot, not its own stale result.
	close(mood.release)
	stale := <-done
	if stale.Mood.TodaysMood != scale.MoodGreat {
		t.Errorf("stale refresh published its result: TodaysMood = %q", stale.Mood.TodaysMood)
	}

	snap, err := svc.Snapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	if snap.Mood.TodaysMood != scale.MoodGreat {
		t.Errorf("published TodaysMood = %q, want great", snap.Mood.TodaysMood)
	}
}

func TestWatchRefreshesOnNotify(t *testing.T) {
	mood := &stubMoodService{moods: []scale.Mood{scale.MoodOkay, scale.MoodGreat}}
	notifier := NewInProcessNotifier()
	svc := NewDashboardService(mood, &stubJournalService{overview: journalOverviewFixture()}, &stubWellnessService{}, notifier)

	if _, err := svc.Refresh(context.Background(), "user-1"); err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}

	unsubscribe := svc.Watch("user-1")
	defer unsubscribe()

	notifier.Notify("user-1")

	deadline := time.After(2 * time.Second)
	for {
		snap, err := svc.Snapshot(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("Snapshot() error: %v", err)
		}
		if snap.Mood.TodaysMood == scale.MoodGreat {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("dashboard never refreshed: TodaysMood = %q", snap.Mood.TodaysMood)
		case <-time.After(10 * time.Millisecond):
		}
	}
}
