package models

import "github.com/mwhitfield/caretrack/internal/constants"

// InsightConfidence is the single confidence vocabulary the UI layer sees,
// regardless of whether a signal came from the baseline engine, the rule
// engine, or the correlation detector.
type InsightConfidence string

const (
	ConfidenceEarly    InsightConfidence = "early"
	ConfidenceEmerging InsightConfidence = "emerging"
	ConfidenceStrong   InsightConfidence = "strong"
)

// CorrelationStrength is the raw detector-side confidence tier.
type CorrelationStrength string

const (
	StrengthLow      CorrelationStrength = "low"
	StrengthModerate CorrelationStrength = "moderate"
	StrengthHigh     CorrelationStrength = "high"
)

// Insight is one short user-facing statement, used for both stand-out
// insights and positive observations.
type Insight struct {
	ID         string                `json:"id"`
	Category   constants.LogCategory `json:"category"`
	Message    string                `json:"message"`
	Confidence InsightConfidence     `json:"confidence"`
}

// Correlation is one detected statistical relationship between two tracked
// variables, as reported by the correlation detector.
type Correlation struct {
	ID          string                `json:"id"`
	Category    constants.LogCategory `json:"category"`
	FactorA     string                `json:"factor_a"`
	FactorB     string                `json:"factor_b"`
	Description string                `json:"description"`
	Strength    CorrelationStrength   `json:"strength"`
	SampleDays  int                   `json:"sample_days"`
}

// Suggestion is an actionable, non-prescriptive follow-up attached to a
// correlation card. Always framed as requiring care-team approval, never a
// medical directive.
type Suggestion struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// CorrelationCard is the detailed secondary-view rendering of one
// correlation, with its optional suggestion. Dismissing the suggestion hides
// it on future computations but leaves the card itself visible.
type CorrelationCard struct {
	Correlation Correlation       `json:"correlation"`
	Confidence  InsightConfidence `json:"confidence"`
	Suggestion  *Suggestion       `json:"suggestion,omitempty"`
}

// RuleInsight is the rule engine's output before aggregation: a pattern
// statement keyed by category, with a flag for whether it reads as a concern.
type RuleInsight struct {
	ID         string                `json:"id"`
	Category   constants.LogCategory `json:"category"`
	Message    string                `json:"message"`
	Concern    bool                  `json:"concern"`
	DataPoints int                   `json:"data_points"`
}

// InsightData is the full response of one insight computation.
type InsightData struct {
	StandOut     []Insight         `json:"stand_out"`
	Positive     []Insight         `json:"positive"`
	Correlations []CorrelationCard `json:"correlations"`
	IsSampleData bool              `json:"is_sample_data"`
	DaysOfData   int               `json:"days_of_data"`
}
