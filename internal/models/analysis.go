package models

import "github.com/sereneapp/serene-api/internal/scale"

// JournalAnalysis is the structured payload returned by the external
// journal analyzer. The engine treats it as opaque enrichment: only the
// sentiment and stress fields feed aggregation, everything else is
// passed through for display.
type JournalAnalysis struct {
	Sentiment               scale.Sentiment   `json:"sentiment"`
	SentimentScore          float64           `json:"sentimentScore"`
	StressLevel             scale.StressLevel `json:"stressLevel"`
	EmotionsDetected        []string          `json:"emotionsDetected"`
	SupportiveResponse      string            `json:"supportiveResponse"`
	SelfCareRecommendations []string          `json:"selfCareRecommendations"`
	Patterns                []string          `json:"patterns,omitempty"`
	Disclaimer              string            `json:"disclaimer"`
}
