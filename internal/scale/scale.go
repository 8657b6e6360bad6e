// Package scale maps the categorical labels captured at the journaling
// boundary (mood, sentiment, stress) onto the numeric scales the rollup
// engine aggregates. Mappings are fixed lookup tables; unknown labels
// resolve to a neutral default rather than an error, so downstream
// aggregation never sees an out-of-domain value.
package scale

// Mood is one of the five self-reported mood levels.
type Mood string

const (
	MoodGreat Mood = "great"
	MoodGood  Mood = "good"
	MoodOkay  Mood = "okay"
	MoodLow   Mood = "low"
	MoodBad   Mood = "bad"
)

// Sentiment is the label returned by the journal analyzer.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
	SentimentMixed    Sentiment = "mixed"
)

// StressLevel is the coarse stress label returned by the journal analyzer.
type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

// Neutral defaults applied when a label is missing or out of domain.
const (
	NeutralMoodValue      = 3
	NeutralSentimentScore = 0.0
	NeutralStressValue    = 50.0
)

var moodValues = map[Mood]int{
	MoodGreat: 5,
	MoodGood:  4,
	MoodOkay:  3,
	MoodLow:   2,
	MoodBad:   1,
}

var moodByValue = map[int]Mood{
	5: MoodGreat,
	4: MoodGood,
	3: MoodOkay,
	2: MoodLow,
	1: MoodBad,
}

var sentimentScores = map[Sentiment]float64{
	SentimentPositive: 0.7,
	SentimentNeutral:  0.1,
	SentimentNegative: -0.5,
	SentimentMixed:    0.0,
}

var sentimentMoods = map[Sentiment]Mood{
	SentimentPositive: MoodGreat,
	SentimentNeutral:  MoodOkay,
	SentimentNegative: MoodLow,
	SentimentMixed:    MoodOkay,
}

var stressValues = map[StressLevel]float64{
	StressLow:    25,
	StressMedium: 50,
	StressHigh:   75,
}

// MoodValue maps a mood label to its 1..5 value. Unknown or empty labels
// map to the neutral 3.
func MoodValue(m Mood) int {
	if v, ok := moodValues[m]; ok {
		return v
	}
	return NeutralMoodValue
}

// MoodForValue is the exact inverse of MoodValue for values 1..5.
// Out-of-range values map to "okay".
func MoodForValue(v int) Mood {
	if m, ok := moodByValue[v]; ok {
		return m
	}
	return MoodOkay
}

// SentimentScore maps a sentiment label to its representative score on
// the -1..1 scale. Unknown labels map to 0.
func SentimentScore(s Sentiment) float64 {
	if v, ok := sentimentScores[s]; ok {
		return v
	}
	return NeutralSentimentScore
}

// MoodForSentiment maps a sentiment label to the mood level used for
// unified display when the user didn't self-report one.
func MoodForSentiment(s Sentiment) Mood {
	if m, ok := sentimentMoods[s]; ok {
		return m
	}
	return MoodOkay
}

// StressValue maps a stress label to its 0..100 value. An unknown or
// absent label returns nil: defaulting to 50 happens at the bucket
// aggregation level, never per record.
func StressValue(s StressLevel) *float64 {
	if v, ok := stressValues[s]; ok {
		return &v
	}
	return nil
}
