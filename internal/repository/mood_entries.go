package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sereneapp/serene-api/internal/models"
	"github.com/sereneapp/serene-api/pkg/supabase"
)

type moodEntryRepository struct {
	client *supabase.Client
}

// NewMoodEntryRepository creates a new mood entry repository
func NewMoodEntryRepository(client *supabase.Client) MoodEntryRepository {
	return &moodEntryRepository{client: client}
}

// GetForDay returns the authoritative mood entry for one day. When
// duplicate rows exist for the day, the most recently created wins.
func (r *moodEntryRepository) GetForDay(ctx context.Context, userID, dayKey string) (*models.MoodEntry, error) {
	query := map[string]string{
		"user_id":    fmt.Sprintf("eq.%s", userID),
		"entry_date": fmt.Sprintf("eq.%s", dayKey),
		"select":     "*",
		"order":      "created_at.desc",
		"limit":      "1",
	}

	body, err := r.client.Query("mood_entries", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entry: %w", err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

func (r *moodEntryRepository) GetByUserIDAndDateRange(ctx context.Context, userID, startDay, endDay string) ([]models.MoodEntry, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"and":     fmt.Sprintf("(entry_date.gte.%s,entry_date.lte.%s)", startDay, endDay),
		"select":  "*",
		"order":   "entry_date.asc,created_at.asc",
	}

	body, err := r.client.Query("mood_entries", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entries: %w", err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}

func (r *moodEntryRepository) UpsertForDay(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	data := map[string]any{
		"user_id":    entry.UserID,
		"mood":       entry.Mood,
		"mood_value": entry.MoodValue,
		"entry_date": entry.EntryDate,
	}

	body, err := r.client.Upsert("mood_entries", data, "user_id,entry_date")
	if err != nil {
		return nil, fmt.Errorf("failed to upsert mood entry: %w", err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no mood entry returned")
	}
	return &entries[0], nil
}
