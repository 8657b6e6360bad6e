package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sereneapp/serene-api/internal/models"
	"github.com/sereneapp/serene-api/pkg/supabase"
)

type exerciseCompletionRepository struct {
	client *supabase.Client
}

// NewExerciseCompletionRepository creates a new exercise completion repository
func NewExerciseCompletionRepository(client *supabase.Client) ExerciseCompletionRepository {
	return &exerciseCompletionRepository{client: client}
}

func (r *exerciseCompletionRepository) Create(ctx context.Context, completion *models.ExerciseCompletion) (*models.ExerciseCompletion, error) {
	data := map[string]any{
		"user_id":       completion.UserID,
		"exercise_id":   completion.ExerciseID,
		"exercise_name": completion.ExerciseName,
	}

	body, err := r.client.Insert("exercise_completions", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create exercise completion: %w", err)
	}

	var completions []models.ExerciseCompletion
	if err := json.Unmarshal(body, &completions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(completions) == 0 {
		return nil, fmt.Errorf("no exercise completion returned")
	}
	return &completions[0], nil
}

func (r *exerciseCompletionRepository) GetByUserID(ctx context.Context, userID string) ([]models.ExerciseCompletion, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "completed_at.desc",
	}

	body, err := r.client.Query("exercise_completions", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise completions: %w", err)
	}

	var completions []models.ExerciseCompletion
	if err := json.Unmarshal(body, &completions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return completions, nil
}
