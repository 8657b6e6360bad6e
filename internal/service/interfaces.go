package service

import (
	"context"

	"github.com/sereneapp/serene-api/internal/models"
	"github.com/sereneapp/serene-api/internal/scale"
)

// MoodService defines the interface for mood tracking business logic
type MoodService interface {
	GetOverview(ctx context.Context, userID string) (*models.MoodOverview, error)
	SaveMood(ctx context.Context, userID string, mood scale.Mood) (*models.MoodEntry, error)
}

// JournalService defines the interface for journal business logic
type JournalService interface {
	GetOverview(ctx context.Context, userID string) (*models.JournalOverview, error)
	CreateEntry(ctx context.Context, userID string, req *models.CreateJournalEntryRequest) (*models.JournalEntryView, error)
}

// WellnessService defines the interface for wellness tracking business logic
type WellnessService interface {
	GetWeeklySummary(ctx context.Context, userID string) (*models.WellnessSummary, error)
	LogWellness(ctx context.Context, userID string, req *models.LogWellnessRequest) (*models.WellnessLog, error)
	CompleteExercise(ctx context.Context, userID string, req *models.CompleteExerciseRequest) (*models.ExerciseCompletion, error)
	GetCompletions(ctx context.Context, userID string) ([]models.ExerciseCompletion, error)
}

// Analyzer defines the external journal analysis collaborator.
type Analyzer interface {
	Analyze(ctx context.Context, content, moodHint string) (*models.JournalAnalysis, error)
}

// DashboardService recomputes and publishes the per-user output surface.
type DashboardService interface {
	Snapshot(ctx context.Context, userID string) (*models.Snapshot, error)
	Refresh(ctx context.Context, userID string) (*models.Snapshot, error)
	Watch(userID string) (unsubscribe func())
}
