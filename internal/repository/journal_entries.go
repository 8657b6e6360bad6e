package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sereneapp/serene-api/internal/models"
	"github.com/sereneapp/serene-api/pkg/supabase"
)

type journalEntryRepository struct {
	client *supabase.Client
}

// NewJournalEntryRepository creates a new journal entry repository
func NewJournalEntryRepository(client *supabase.Client) JournalEntryRepository {
	return &journalEntryRepository{client: client}
}

func (r *journalEntryRepository) Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	data := map[string]any{
		"user_id":   entry.UserID,
		"content":   entry.Content,
		"mood":      entry.Mood,
		"sentiment": entry.Sentiment,
	}
	if entry.StressLevel != nil {
		data["stress_level"] = *entry.StressLevel
	}
	if entry.AIAnalysis != nil {
		data["ai_analysis"] = entry.AIAnalysis
	}

	body, err := r.client.Insert("journal_entries", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no journal entry returned")
	}
	return &entries[0], nil
}

func (r *journalEntryRepository) GetByUserID(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "created_at.desc",
	}

	body, err := r.client.Query("journal_entries", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entries: %w", err)
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}
