package repository

import (
	"context"

	"github.com/sereneapp/serene-api/internal/models"
)

// MoodEntryRepository defines data access for daily mood entries.
type MoodEntryRepository interface {
	GetForDay(ctx context.Context, userID, dayKey string) (*models.MoodEntry, error)
	GetByUserIDAndDateRange(ctx context.Context, userID, startDay, endDay string) ([]models.MoodEntry, error)
	UpsertForDay(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
}

// JournalEntryRepository defines data access for journal entries.
type JournalEntryRepository interface {
	Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error)
	GetByUserID(ctx context.Context, userID string) ([]models.JournalEntry, error)
}

// WellnessLogRepository defines data access for daily wellness logs.
type WellnessLogRepository interface {
	GetByUserIDAndDateRange(ctx context.Context, userID, startDay, endDay string) ([]models.WellnessLog, error)
	UpsertForDay(ctx context.Context, log *models.WellnessLog) (*models.WellnessLog, error)
}

// ExerciseCompletionRepository defines data access for exercise completions.
type ExerciseCompletionRepository interface {
	Create(ctx context.Context, completion *models.ExerciseCompletion) (*models.ExerciseCompletion, error)
	GetByUserID(ctx context.Context, userID string) ([]models.ExerciseCompletion, error)
}
