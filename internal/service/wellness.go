package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sereneapp/serene-api/internal/models"
	"github.com/sereneapp/serene-api/internal/repository"
	"github.com/sereneapp/serene-api/internal/rollup"
	"github.com/sereneapp/serene-api/internal/timeutil"
)

type wellnessService struct {
	wellnessRepo repository.WellnessLogRepository
	exerciseRepo repository.ExerciseCompletionRepository
	notifier     ChangeNotifier
	now          func() time.Time
}

// NewWellnessService creates a new wellness service
func NewWellnessService(
	wellnessRepo repository.WellnessLogRepository,
	exerciseRepo repository.ExerciseCompletionRepository,
	notifier ChangeNotifier,
) WellnessService {
	return &wellnessService{
		wellnessRepo: wellnessRepo,
		exerciseRepo: exerciseRepo,
		notifier:     notifier,
		now:          time.Now,
	}
}

// GetWeeklySummary compares the last 7 days of wellness logs against
// the 7 days before that. Trends use the relative ±10% rule; a metric
// with no data last week reads as up when anything was logged now.
func (s *wellnessService) GetWeeklySummary(ctx context.Context, userID string) (*models.WellnessSummary, error) {
	today := timeutil.Midnight(s.now())
	weekStart := timeutil.DaysBefore(today, 6)
	prevWeekStart := timeutil.DaysBefore(today, 13)
	prevWeekEnd := timeutil.DaysBefore(today, 7)

	thisWeek, err := s.wellnessRepo.GetByUserIDAndDateRange(ctx, userID,
		timeutil.DayKey(weekStart), timeutil.DayKey(today))
	if err != nil {
		return nil, fmt.Errorf("failed to get this week's wellness logs: %w", err)
	}

	lastWeek, err := s.wellnessRepo.GetByUserIDAndDateRange(ctx, userID,
		timeutil.DayKey(prevWeekStart), timeutil.DayKey(prevWeekEnd))
	if err != nil {
		return nil, fmt.Errorf("failed to get last week's wellness logs: %w", err)
	}

	curSleep, curWater, curExercise := wellnessAverages(thisWeek)
	prevSleep, prevWater, prevExercise := wellnessAverages(lastWeek)

	return &models.WellnessSummary{
		AvgSleep:      math.Round(curSleep*10) / 10,
		AvgWater:      math.Round(curWater*10) / 10,
		AvgExercise:   math.Round(curExercise),
		SleepTrend:    rollup.RelativeTrend(curSleep, prevSleep),
		WaterTrend:    rollup.RelativeTrend(curWater, prevWater),
		ExerciseTrend: rollup.RelativeTrend(curExercise, prevExercise),
		DaysLogged:    len(thisWeek),
	}, nil
}

// LogWellness records or replaces today's wellness counts.
func (s *wellnessService) LogWellness(ctx context.Context, userID string, req *models.LogWellnessRequest) (*models.WellnessLog, error) {
	log := &models.WellnessLog{
		UserID:          userID,
		LogDate:         timeutil.DayKey(s.now()),
		SleepHours:      req.SleepHours,
		WaterGlasses:    req.WaterGlasses,
		ExerciseMinutes: req.ExerciseMinutes,
	}

	saved, err := s.wellnessRepo.UpsertForDay(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to save wellness log: %w", err)
	}

	s.notifier.Notify(userID)
	return saved, nil
}

func (s *wellnessService) CompleteExercise(ctx context.Context, userID string, req *models.CompleteExerciseRequest) (*models.ExerciseCompletion, error) {
	completion := &models.ExerciseCompletion{
		UserID:       userID,
		ExerciseID:   req.ExerciseID,
		ExerciseName: req.ExerciseName,
	}

	saved, err := s.exerciseRepo.Create(ctx, completion)
	if err != nil {
		return nil, fmt.Errorf("failed to record exercise completion: %w", err)
	}

	s.notifier.Notify(userID)
	return saved, nil
}

func (s *wellnessService) GetCompletions(ctx context.Context, userID string) ([]models.ExerciseCompletion, error) {
	completions, err := s.exerciseRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise completions: %w", err)
	}
	return completions, nil
}

func wellnessAverages(logs []models.WellnessLog) (sleep, water, exercise float64) {
	if len(logs) == 0 {
		return 0, 0, 0
	}
	for _, l := range logs {
		sleep += l.SleepHours
		water += float64(l.WaterGlasses)
		exercise += float64(l.ExerciseMinutes)
	}
	n := float64(len(logs))
	return sleep / n, water / n, exercise / n
}
