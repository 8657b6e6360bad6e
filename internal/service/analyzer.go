package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/sereneapp/serene-api/internal/models"
	"github.com/sereneapp/serene-api/internal/scale"
)

const analysisDisclaimer = "This analysis is for self-reflection only and is not a substitute for professional mental health care."

const analyzerSystemPrompt = `You are a compassionate mental health support assistant. Analyze the
journal entry for emotional sentiment and stress indicators and respond
with JSON only, using this structure:
{
  "sentiment": "positive" | "neutral" | "negative" | "mixed",
  "sentimentScore": number between -1 and 1,
  "stressLevel": "low" | "medium" | "high",
  "emotionsDetected": string[],
  "supportiveResponse": string,
  "selfCareRecommendations": string[],
  "patterns": string[],
  "disclaimer": "` + analysisDisclaimer + `"
}`

type analyzerService struct {
	url        string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnalyzerService creates an Analyzer backed by an OpenAI-compatible
// chat completion gateway.
func NewAnalyzerService(url, apiKey, model string) Analyzer {
	return &analyzerService{
		url:        url,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze sends the entry text to the analyzer gateway and decodes the
// structured payload. A response that isn't valid JSON degrades to a
// neutral analysis carrying the raw text as the supportive response,
// so a chatty model never breaks the save path.
func (s *analyzerService) Analyze(ctx context.Context, content, moodHint string) (*models.JournalAnalysis, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("journal entry is required")
	}

	userPrompt := fmt.Sprintf("Please analyze this journal entry:\n\n%q", content)
	if moodHint != "" {
		userPrompt = fmt.Sprintf("Please analyze this journal entry (user's self-reported mood: %s):\n\n%q", moodHint, content)
	}

	payload, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: analyzerSystemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode analyzer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build analyzer request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analyzer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("analyzer returned status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("failed to decode analyzer response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("no analysis received")
	}

	return parseAnalysis(chat.Choices[0].Message.Content), nil
}

var jsonFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// parseAnalysis extracts the JSON payload, tolerating markdown code
// fences around it.
func parseAnalysis(content string) *models.JournalAnalysis {
	raw := content
	if m := jsonFenceRe.FindStringSubmatch(content); m != nil {
		raw = m[1]
	}

	var analysis models.JournalAnalysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &analysis); err != nil {
		return &models.JournalAnalysis{
			Sentiment:          scale.SentimentNeutral,
			SentimentScore:     0,
			StressLevel:        scale.StressMedium,
			EmotionsDetected:   []string{"reflective"},
			SupportiveResponse: content,
			SelfCareRecommendations: []string{
				"Take a few deep breaths",
				"Go for a short walk",
				"Connect with someone you trust",
			},
			Disclaimer: analysisDisclaimer,
		}
	}

	if analysis.Disclaimer == "" {
		analysis.Disclaimer = analysisDisclaimer
	}
	return &analysis
}
