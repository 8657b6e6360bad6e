package service

import (
	"context"
	"sync"
	"time"

	"github.com/sereneapp/serene-api/internal/models"
	"github.com/sereneapp/serene-api/internal/rollup"
)

// dashboardService owns the recompute lifecycle for the per-user output
// surface. The aggregation itself is stateless; this layer only holds
// the last-known-good snapshot per user and the subscription wiring.
// Recomputes are full rebuilds from raw records; there is no
// incremental update of streaks or rollups.
type dashboardService struct {
	moodService     MoodService
	journalService  JournalService
	wellnessService WellnessService
	notifier        ChangeNotifier
	now             func() time.Time

	mu        sync.Mutex
	watched   map[string]struct{}
	snapshots map[string]*models.Snapshot
	// published tracks the generation of the snapshot each user holds;
	// generations orders concurrent recomputes for the stale guard.
	published   map[string]uint64
	generations map[string]uint64
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	moodService MoodService,
	journalService JournalService,
	wellnessService WellnessService,
	notifier ChangeNotifier,
) DashboardService {
	return &dashboardService{
		moodService:     moodService,
		journalService:  journalService,
		wellnessService: wellnessService,
		notifier:        notifier,
		now:             time.Now,
		watched:         make(map[string]struct{}),
		snapshots:       make(map[string]*models.Snapshot),
		published:       make(map[string]uint64),
		generations:     make(map[string]uint64),
	}
}

// Snapshot returns the last published snapshot, computing one first if
// the user has none yet.
func (s *dashboardService) Snapshot(ctx context.Context, userID string) (*models.Snapshot, error) {
	s.mu.Lock()
	snap, ok := s.snapshots[userID]
	s.mu.Unlock()
	if ok {
		return snap, nil
	}
	return s.Refresh(ctx, userID)
}

// Refresh recomputes the full output surface from the raw records.
// Concurrent refreshes for one user may run in parallel, since the
// computation is pure, and publication is ordered by generation: a
// slower, older recompute never overwrites a newer published result.
// On fetch failure the previous snapshot is retained untouched and the
// error surfaces to the caller.
func (s *dashboardService) Refresh(ctx context.Context, userID string) (*models.Snapshot, error) {
	s.mu.Lock()
	s.generations[userID]++
	gen := s.generations[userID]
	_, watched := s.watched[userID]
	if !watched {
		s.watched[userID] = struct{}{}
	}
	s.mu.Unlock()

	// First touch registers the user for change-driven recomputes, so
	// writes after this keep the snapshot fresh without polling.
	if !watched {
		s.Watch(userID)
	}

	snap, err := s.compute(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen > s.published[userID] {
		s.published[userID] = gen
		s.snapshots[userID] = snap
	}
	return s.snapshots[userID], nil
}

// Watch subscribes the user's dashboard to record changes; every
// notification triggers a background refresh. Refresh errors leave the
// previous snapshot in place, so a flaky store degrades to stale data
// rather than an empty dashboard.
func (s *dashboardService) Watch(userID string) func() {
	return s.notifier.Subscribe(userID, func() {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			s.Refresh(ctx, userID) //nolint:errcheck // stale snapshot retained on failure
		}()
	})
}

func (s *dashboardService) compute(ctx context.Context, userID string) (*models.Snapshot, error) {
	mood, err := s.moodService.GetOverview(ctx, userID)
	if err != nil {
		return nil, err
	}

	journal, err := s.journalService.GetOverview(ctx, userID)
	if err != nil {
		return nil, err
	}

	wellness, err := s.wellnessService.GetWeeklySummary(ctx, userID)
	if err != nil {
		return nil, err
	}

	sentiments := make([]float64, 0, len(journal.WeeklySeries))
	for _, p := range journal.WeeklySeries {
		sentiments = append(sentiments, p.Sentiment)
	}

	return &models.Snapshot{
		Mood:      *mood,
		Sentiment: journal.WeeklySeries,
		Streaks: rollup.StreakState{
			Current: journal.Stats.Streak,
			Longest: max(journal.Stats.Streak, longestFromEntries(journal)),
		},
		TrendDirection: rollup.SeriesTrend(sentiments),
		Wellness:       wellness,
		ComputedAt:     s.now(),
	}, nil
}

// longestFromEntries recomputes the longest streak over the full entry
// history carried in the overview.
func longestFromEntries(journal *models.JournalOverview) int {
	keys := make([]string, 0, len(journal.Entries))
	for _, e := range journal.Entries {
		keys = append(keys, e.CreatedAt.Format("2006-01-02"))
	}
	if len(keys) == 0 {
		return 0
	}
	// Anchor at the most recent entry day so the scan measures history,
	// not whether the streak is currently alive.
	var latest time.Time
	for _, e := range journal.Entries {
		if e.CreatedAt.After(latest) {
			latest = e.CreatedAt
		}
	}
	return rollup.Streaks(latest, keys).Longest
}
