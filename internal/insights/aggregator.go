// Package insights assembles baseline comparisons, rule-engine patterns, and
// detected correlations into the ranked, de-duplicated lists the UI shows.
package insights

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/logger"
	"github.com/mwhitfield/caretrack/internal/models"
	"github.com/mwhitfield/caretrack/internal/utils"
)

// rapidNavWindow is how tightly packed requests must be before the
// aggregator serves its memoized result instead of recomputing.
const rapidNavWindow = 10 * time.Second

// Selector picks an index in [0, n) from a set of message variants. Injected
// so tests can pin the choice; production uses RandomSelector.
type Selector func(n int) int

func RandomSelector(n int) int {
	return rand.IntN(n)
}

// Detector is the correlation signal source.
type Detector interface {
	Detect(days int, now time.Time) ([]models.Correlation, error)
}

// RuleEngine is the pattern-rule signal source.
type RuleEngine interface {
	Evaluate(days int, now time.Time) ([]models.RuleInsight, error)
}

// ComparisonSource supplies today-vs-baseline comparisons.
type ComparisonSource interface {
	GetAllTodayVsBaseline(today time.Time) []models.BaselineComparison
}

// FlagStore persists the sample-data flags and suggestion dismissals.
type FlagStore interface {
	GetFlag(key string) (bool, error)
	SetFlag(key string, value bool) error
	IsSuggestionDismissed(id string) (bool, error)
	DismissSuggestion(id string) error
}

// HistoryReader answers how long the user has been logging.
type HistoryReader interface {
	FirstLogDay(category constants.LogCategory) (string, error)
}

type Aggregator struct {
	detector  Detector
	rules     RuleEngine
	baselines ComparisonSource
	flags     FlagStore
	history   HistoryReader
	selector  Selector
	tracker   *NavTracker

	mu         sync.Mutex
	cached     *models.InsightData
	cachedDays int
}

func New(detector Detector, rules RuleEngine, baselines ComparisonSource, flags FlagStore, history HistoryReader, selector Selector) *Aggregator {
	if selector == nil {
		selector = RandomSelector
	}
	return &Aggregator{
		detector:  detector,
		rules:     rules,
		baselines: baselines,
		flags:     flags,
		history:   history,
		selector:  selector,
		tracker:   NewNavTracker(4),
	}
}

var belowBaselineMessages = []string{
	"Fewer %s entries than usual today.",
	"Today is running behind the usual %s routine.",
}

var onTrackMessages = []string{
	"You're on track with %s today.",
	"Today's %s logging matches the usual routine.",
}

var suggestionVariants = map[constants.LogCategory][]string{
	constants.CategoryMeal: {
		"You could try prepping meals on low-symptom days. Check with your care team before changing any routine.",
		"You could try smaller, more frequent meals on harder days. Check with your care team before changing any routine.",
	},
	constants.CategoryVitals: {
		"You could try taking readings at the same time each morning. Check with your care team before changing any routine.",
	},
	constants.CategoryMedication: {
		"You could try pairing doses with an existing habit like breakfast. Check with your care team before changing any routine.",
	},
}

// LoadInsightData computes the full insight response for the window of
// `days` ending at now. It never fails: signal-source errors degrade to
// empty inputs and a panic anywhere in the computation yields a fixed
// placeholder response. Rapid repeat requests are served from the previous
// result.
func (a *Aggregator) LoadInsightData(days int, now time.Time) (data models.InsightData) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Insight computation failed", "panic", r)
			data = fallbackData()
		}
	}()

	a.tracker.Record(now)
	a.mu.Lock()
	// The memo only serves requests for the window it was computed for.
	if a.cached != nil && a.cachedDays == days && a.tracker.Rapid(now, rapidNavWindow) {
		cached := *a.cached
		a.mu.Unlock()
		return cached
	}
	a.mu.Unlock()

	daysOfData := a.daysOfData(days, now)

	correlations, err := a.detector.Detect(days, now)
	if err != nil {
		logger.Warn("Correlation detection failed", "error", err)
		correlations = nil
	}
	ruleInsights, err := a.rules.Evaluate(days, now)
	if err != nil {
		logger.Warn("Rule evaluation failed", "error", err)
		ruleInsights = nil
	}

	if daysOfData < constants.InsightMinDays && len(correlations) == 0 && len(ruleInsights) == 0 {
		data = a.samplePath(daysOfData)
	} else {
		comparisons := a.baselines.GetAllTodayVsBaseline(now)
		data = a.assemble(correlations, ruleInsights, comparisons, daysOfData)
	}

	a.mu.Lock()
	a.cached = &data
	a.cachedDays = days
	a.mu.Unlock()
	return data
}

// samplePath handles users with too little history for real analysis. A
// prior dismissal suppresses the sample dataset permanently and falls back
// to a keep-tracking nudge.
func (a *Aggregator) samplePath(daysOfData int) models.InsightData {
	dismissed, err := a.flags.GetFlag(constants.FlagSampleDataDismissed)
	if err != nil {
		logger.Warn("Failed to read sample-data flag", "error", err)
	}
	if dismissed {
		return keepTrackingData(daysOfData)
	}

	shown, err := a.flags.GetFlag(constants.FlagSampleDataShown)
	if err != nil {
		logger.Warn("Failed to read sample-data flag", "error", err)
	}
	if !shown {
		if err := a.flags.SetFlag(constants.FlagSampleDataShown, true); err != nil {
			logger.Warn("Failed to record sample-data flag", "error", err)
		}
	}

	return sampleData(!shown, daysOfData)
}

// assemble builds the three ranked lists from the real signals.
func (a *Aggregator) assemble(correlations []models.Correlation, ruleInsights []models.RuleInsight, comparisons []models.BaselineComparison, daysOfData int) models.InsightData {
	data := models.InsightData{DaysOfData: daysOfData}

	// Stand-out list: correlations claim the first slots, then rule
	// concerns, then below-baseline comparisons fill the rest. At most one
	// medication claim may appear.
	medicationClaimed := false
	add := func(insight models.Insight) {
		if len(data.StandOut) >= constants.MaxStandOutInsights {
			return
		}
		if insight.Category == constants.CategoryMedication {
			if medicationClaimed {
				return
			}
			medicationClaimed = true
		}
		data.StandOut = append(data.StandOut, insight)
	}

	for i, c := range correlations {
		if i >= constants.CorrelationSlots {
			break
		}
		add(models.Insight{
			ID:         c.ID,
			Category:   c.Category,
			Message:    c.Description,
			Confidence: confidenceFromStrength(c.Strength),
		})
	}
	for _, r := range ruleInsights {
		if !r.Concern {
			continue
		}
		add(models.Insight{
			ID:         r.ID,
			Category:   r.Category,
			Message:    r.Message,
			Confidence: confidenceFromDataPoints(r.DataPoints),
		})
	}
	for _, c := range comparisons {
		if !c.BelowBaseline {
			continue
		}
		add(models.Insight{
			ID:         fmt.Sprintf("baseline-below-%s", c.Category),
			Category:   c.Category,
			Message:    a.pick(belowBaselineMessages, string(c.Category)),
			Confidence: confidenceFromBaseline(c.Confidence),
		})
	}

	// A medication entry in the stand-out list means the positive list must
	// stay silent about medication in the same response.
	for _, r := range ruleInsights {
		if r.Concern {
			continue
		}
		if r.Category == constants.CategoryMedication && medicationClaimed {
			continue
		}
		if len(data.Positive) >= constants.MaxPositiveObservations {
			break
		}
		data.Positive = append(data.Positive, models.Insight{
			ID:         r.ID,
			Category:   r.Category,
			Message:    r.Message,
			Confidence: confidenceFromDataPoints(r.DataPoints),
		})
	}
	for _, c := range comparisons {
		if !c.MatchesBaseline {
			continue
		}
		if c.Category == constants.CategoryMedication && medicationClaimed {
			continue
		}
		if len(data.Positive) >= constants.MaxPositiveObservations {
			break
		}
		data.Positive = append(data.Positive, models.Insight{
			ID:         fmt.Sprintf("baseline-ontrack-%s", c.Category),
			Category:   c.Category,
			Message:    a.pick(onTrackMessages, string(c.Category)),
			Confidence: confidenceFromBaseline(c.Confidence),
		})
	}

	for _, c := range correlations {
		data.Correlations = append(data.Correlations, models.CorrelationCard{
			Correlation: c,
			Confidence:  confidenceFromStrength(c.Strength),
			Suggestion:  a.suggestionFor(c),
		})
	}

	return data
}

// suggestionFor returns the correlation's suggestion, or nil if the category
// has none or the user dismissed it. Dismissal hides only the suggestion,
// never the card.
func (a *Aggregator) suggestionFor(c models.Correlation) *models.Suggestion {
	variants := suggestionVariants[c.Category]
	if len(variants) == 0 {
		return nil
	}

	id := fmt.Sprintf("sugg-%s", c.ID)
	dismissed, err := a.flags.IsSuggestionDismissed(id)
	if err != nil {
		logger.Warn("Failed to read suggestion dismissal", "id", id, "error", err)
	}
	if dismissed {
		return nil
	}

	return &models.Suggestion{ID: id, Text: variants[a.selector(len(variants))]}
}

// DismissSuggestion hides the suggestion on future computations.
func (a *Aggregator) DismissSuggestion(id string) error {
	return a.flags.DismissSuggestion(id)
}

// DismissSampleData permanently suppresses the sample dataset.
func (a *Aggregator) DismissSampleData() error {
	return a.flags.SetFlag(constants.FlagSampleDataDismissed, true)
}

// daysOfData is the elapsed days since the user's earliest log in any
// category, inclusive of today, capped at the requested window.
func (a *Aggregator) daysOfData(window int, now time.Time) int {
	earliest := ""
	for _, category := range constants.AllCategories {
		day, err := a.history.FirstLogDay(category)
		if err != nil {
			logger.Warn("Failed to read first log day", "category", category, "error", err)
			continue
		}
		if day == "" {
			continue
		}
		if earliest == "" || day < earliest {
			earliest = day
		}
	}
	if earliest == "" {
		return 0
	}

	first, err := utils.ParseDay(earliest)
	if err != nil {
		logger.Warn("Malformed first log day", "day", earliest, "error", err)
		return 0
	}

	days := utils.DaysBetween(first, now)
	if days > window {
		days = window
	}
	return days
}

func (a *Aggregator) pick(variants []string, category string) string {
	return fmt.Sprintf(variants[a.selector(len(variants))], category)
}

func confidenceFromStrength(s models.CorrelationStrength) models.InsightConfidence {
	switch s {
	case models.StrengthHigh:
		return models.ConfidenceStrong
	case models.StrengthModerate:
		return models.ConfidenceEmerging
	default:
		return models.ConfidenceEarly
	}
}

func confidenceFromDataPoints(n int) models.InsightConfidence {
	switch {
	case n >= 14:
		return models.ConfidenceStrong
	case n >= 7:
		return models.ConfidenceEmerging
	default:
		return models.ConfidenceEarly
	}
}

func confidenceFromBaseline(c models.Confidence) models.InsightConfidence {
	if c == models.ConfidenceConfident {
		return models.ConfidenceStrong
	}
	return models.ConfidenceEarly
}

func keepTrackingData(daysOfData int) models.InsightData {
	return models.InsightData{
		StandOut: []models.Insight{{
			ID:         "keep-tracking",
			Message:    "Keep tracking daily and insights will appear here soon.",
			Confidence: models.ConfidenceEarly,
		}},
		DaysOfData: daysOfData,
	}
}

func fallbackData() models.InsightData {
	return models.InsightData{
		StandOut: []models.Insight{{
			ID:         "analysis-unavailable",
			Message:    "Unable to analyze patterns right now. Your data is safe; check back later.",
			Confidence: models.ConfidenceEarly,
		}},
	}
}
