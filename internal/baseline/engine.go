// Package baseline answers "what does a typical day look like for this
// user, and how confident should we be?" for each tracked category, using
// nothing heavier than the statistical mode over a short lookback window.
package baseline

import (
	"fmt"
	"time"

	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/logger"
	"github.com/mwhitfield/caretrack/internal/models"
	"github.com/mwhitfield/caretrack/internal/utils"
)

// LogReader is the slice of the storage provider the engine reads from.
type LogReader interface {
	GetLogsForDay(category constants.LogCategory, day string) ([]models.DailyLog, error)
	FirstLogDay(category constants.LogCategory) (string, error)
}

// StateStore persists the two user-override bits per category.
type StateStore interface {
	GetBaselineState(category constants.LogCategory) (models.BaselineState, error)
	SaveBaselineState(models.BaselineState) error
}

type Engine struct {
	logs   LogReader
	states StateStore
}

func New(logs LogReader, states StateStore) *Engine {
	return &Engine{logs: logs, states: states}
}

// BaselineData bundles the computed baselines with their override states.
type BaselineData struct {
	Baselines []models.CategoryBaseline
	States    map[constants.LogCategory]models.BaselineState
}

// CalculateBaseline computes the category baseline as of today. Days with no
// activity are missing data, not zero data points, so they are discarded
// before the mode is taken; fewer than three qualifying days means no
// baseline at all. Storage failures degrade to "no baseline" with a logged
// warning rather than an error.
func (e *Engine) CalculateBaseline(category constants.LogCategory, today time.Time) models.CategoryBaseline {
	none := models.CategoryBaseline{Category: category, Confidence: models.ConfidenceNone}

	firstDay, err := e.logs.FirstLogDay(category)
	if err != nil {
		logger.Warn("Failed to read first log day", "category", category, "error", err)
		return none
	}
	if firstDay == "" {
		return none
	}

	firstDate, err := utils.ParseDay(firstDay)
	if err != nil {
		logger.Warn("Malformed first log day", "category", category, "day", firstDay, "error", err)
		return none
	}

	// Lookback window: elapsed days since first use, inclusive of today,
	// capped at seven.
	windowDays := utils.DaysBetween(firstDate, today)
	if windowDays > constants.BaselineLookbackDays {
		windowDays = constants.BaselineLookbackDays
	}
	if windowDays < constants.BaselineMinDays {
		return none
	}

	counts := e.dailyCounts(category, today, windowDays)
	if len(counts) < constants.BaselineMinDays {
		return none
	}

	confidence := models.ConfidenceTentative
	if len(counts) >= constants.BaselineConfidentDays {
		confidence = models.ConfidenceConfident
	}

	return models.CategoryBaseline{
		Category:   category,
		DailyCount: mode(counts),
		DaysOfData: len(counts),
		Confidence: confidence,
	}
}

// dailyCounts returns the per-day category counts over the window in forward
// date order, with zero-count days already discarded.
func (e *Engine) dailyCounts(category constants.LogCategory, today time.Time, windowDays int) []int {
	var counts []int
	for i := windowDays - 1; i >= 0; i-- {
		day := utils.DayString(today.AddDate(0, 0, -i))
		counts = appendDayCount(counts, e.countForDay(category, day))
	}
	return counts
}

func appendDayCount(counts []int, count int) []int {
	if count == 0 {
		return counts
	}
	return append(counts, count)
}

func (e *Engine) countForDay(category constants.LogCategory, day string) int {
	logs, err := e.logs.GetLogsForDay(category, day)
	if err != nil {
		logger.Warn("Failed to read logs for day", "category", category, "day", day, "error", err)
		return 0
	}

	count := 0
	for _, log := range logs {
		count += log.CountsAs()
	}
	return count
}

// mode returns the most frequent value; ties break to the value first
// encountered in forward date order. Mode rather than mean keeps outlier
// days from dragging the result and yields a whole number the UI can state
// plainly.
func mode(counts []int) int {
	freq := make(map[int]int)
	for _, c := range counts {
		freq[c]++
	}

	best := counts[0]
	for _, c := range counts {
		if freq[c] > freq[best] {
			best = c
		}
	}

	return best
}

// CompareTodayToBaseline compares today's count against the category
// baseline. Meeting or exceeding the baseline counts as on track; doing more
// than usual is never flagged. The second return is false when the category
// has no surfaceable baseline.
func (e *Engine) CompareTodayToBaseline(category constants.LogCategory, today time.Time) (models.BaselineComparison, bool) {
	b := e.CalculateBaseline(category, today)
	if b.Confidence == models.ConfidenceNone {
		return models.BaselineComparison{}, false
	}

	todayCount := e.countForDay(category, utils.DayString(today))

	return models.BaselineComparison{
		Category:        category,
		TodayCount:      todayCount,
		BaselineCount:   b.DailyCount,
		MatchesBaseline: todayCount >= b.DailyCount,
		BelowBaseline:   todayCount < b.DailyCount,
		Confidence:      b.Confidence,
	}, true
}

// GetAllBaselines computes baselines for every tracked category. Baselines
// with no confidence are filtered out: they must never reach the UI.
func (e *Engine) GetAllBaselines(today time.Time) BaselineData {
	data := BaselineData{
		States: make(map[constants.LogCategory]models.BaselineState),
	}

	for _, category := range constants.TrackedCategories {
		b := e.CalculateBaseline(category, today)
		if b.Confidence == models.ConfidenceNone {
			continue
		}
		data.Baselines = append(data.Baselines, b)

		state, err := e.states.GetBaselineState(category)
		if err != nil {
			logger.Warn("Failed to read baseline state", "category", category, "error", err)
			state = models.BaselineState{Category: category}
		}
		data.States[category] = state
	}

	return data
}

// GetAllTodayVsBaseline returns today's comparison for every category with a
// surfaceable baseline.
func (e *Engine) GetAllTodayVsBaseline(today time.Time) []models.BaselineComparison {
	var comparisons []models.BaselineComparison
	for _, category := range constants.TrackedCategories {
		if c, ok := e.CompareTodayToBaseline(category, today); ok {
			comparisons = append(comparisons, c)
		}
	}
	return comparisons
}

// Confirm marks the baseline as user-asserted, which locks the UI to
// "usually"/"typically" framing. The baseline itself keeps recomputing on
// fresh data; confirmation only changes word choice.
func (e *Engine) Confirm(category constants.LogCategory) error {
	state, err := e.states.GetBaselineState(category)
	if err != nil {
		return fmt.Errorf("failed to read baseline state: %w", err)
	}
	state.Category = category
	state.Confirmed = true
	return e.states.SaveBaselineState(state)
}

// Reject withdraws a confirmation. The category stays eligible to keep
// recomputing and re-prompting on fresh data.
func (e *Engine) Reject(category constants.LogCategory) error {
	state, err := e.states.GetBaselineState(category)
	if err != nil {
		return fmt.Errorf("failed to read baseline state: %w", err)
	}
	state.Category = category
	state.Confirmed = false
	return e.states.SaveBaselineState(state)
}

// DismissPrompt permanently suppresses the confirmation prompt for the
// category.
func (e *Engine) DismissPrompt(category constants.LogCategory) error {
	state, err := e.states.GetBaselineState(category)
	if err != nil {
		return fmt.Errorf("failed to read baseline state: %w", err)
	}
	state.Category = category
	state.PromptDismissed = true
	return e.states.SaveBaselineState(state)
}
