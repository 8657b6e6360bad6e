package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sereneapp/serene-api/internal/models"
	"github.com/sereneapp/serene-api/pkg/supabase"
)

type wellnessLogRepository struct {
	client *supabase.Client
}

// NewWellnessLogRepository creates a new wellness log repository
func NewWellnessLogRepository(client *supabase.Client) WellnessLogRepository {
	return &wellnessLogRepository{client: client}
}

func (r *wellnessLogRepository) GetByUserIDAndDateRange(ctx context.Context, userID, startDay, endDay string) ([]models.WellnessLog, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"and":     fmt.Sprintf("(log_date.gte.%s,log_date.lte.%s)", startDay, endDay),
		"select":  "*",
		"order":   "log_date.asc",
	}

	body, err := r.client.Query("wellness_logs", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get wellness logs: %w", err)
	}

	var logs []models.WellnessLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}

func (r *wellnessLogRepository) UpsertForDay(ctx context.Context, log *models.WellnessLog) (*models.WellnessLog, error) {
	data := map[string]any{
		"user_id":          log.UserID,
		"log_date":         log.LogDate,
		"sleep_hours":      log.SleepHours,
		"water_glasses":    log.WaterGlasses,
		"exercise_minutes": log.ExerciseMinutes,
	}

	body, err := r.client.Upsert("wellness_logs", data, "user_id,log_date")
	if err != nil {
		return nil, fmt.Errorf("failed to upsert wellness log: %w", err)
	}

	var logs []models.WellnessLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(logs) == 0 {
		return nil, fmt.Errorf("no wellness log returned")
	}
	return &logs[0], nil
}
