package models

import "github.com/mwhitfield/caretrack/internal/constants"

// Confidence grades how much historical evidence backs a baseline.
type Confidence string

const (
	ConfidenceNone      Confidence = "none"
	ConfidenceTentative Confidence = "tentative"
	ConfidenceConfident Confidence = "confident"
)

// CategoryBaseline is the derived "typical day" for one tracked category.
// A baseline with ConfidenceNone is never surfaced to the user.
type CategoryBaseline struct {
	Category   constants.LogCategory `json:"category"`
	DailyCount int                   `json:"daily_count"` // mode of per-day counts over the lookback window
	DaysOfData int                   `json:"days_of_data"`
	Confidence Confidence            `json:"confidence"`
}

// BaselineState holds the two small user-override sets persisted alongside
// the otherwise derived baseline: an explicit confirmation and a permanent
// prompt dismissal. Confirmation only changes word choice in the UI; the
// baseline itself keeps recomputing on fresh data.
type BaselineState struct {
	Category        constants.LogCategory `json:"category"`
	Confirmed       bool                  `json:"confirmed"`
	PromptDismissed bool                  `json:"prompt_dismissed"`
}

// BaselineComparison compares today's count against the category baseline.
// Meeting or exceeding the baseline counts as on track; only a shortfall is
// flagged.
type BaselineComparison struct {
	Category        constants.LogCategory `json:"category"`
	TodayCount      int                   `json:"today_count"`
	BaselineCount   int                   `json:"baseline_count"`
	MatchesBaseline bool                  `json:"matches_baseline"`
	BelowBaseline   bool                  `json:"below_baseline"`
	Confidence      Confidence            `json:"confidence"`
}
