package insights

import (
	"fmt"
	"time"

	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/models"
	"github.com/mwhitfield/caretrack/internal/utils"
)

// Adherence thresholds (percent of expected doses logged over the window).
const (
	adherenceExcellentPct = 90
	adherenceConcernPct   = 60

	// Evening logging cutoff, minutes from midnight (21:00).
	lateLoggingCutoffMin = 21 * 60

	// Symptom days in the window before the frequency rule fires.
	symptomFrequencyDays = 3
)

// RuleLogReader is the slice of the storage provider the rule engine needs.
type RuleLogReader interface {
	GetLogs(category constants.LogCategory, startDay, endDay string) ([]models.DailyLog, error)
	GetAllObligations() ([]models.Obligation, error)
}

// Rules is the built-in pattern rule engine: fixed thresholds over the
// lookback window, no statistics beyond counting.
type Rules struct {
	logs RuleLogReader
}

func NewRules(logs RuleLogReader) *Rules {
	return &Rules{logs: logs}
}

// Evaluate runs every rule over the window of `days` ending at now and
// returns the insights that fired. A storage failure aborts only the rule
// that hit it.
func (r *Rules) Evaluate(days int, now time.Time) ([]models.RuleInsight, error) {
	var insights []models.RuleInsight

	if insight, ok, err := r.medicationAdherence(days, now); err != nil {
		return insights, fmt.Errorf("adherence rule failed: %w", err)
	} else if ok {
		insights = append(insights, insight)
	}

	if insight, ok, err := r.lateLogging(days, now); err != nil {
		return insights, fmt.Errorf("late-logging rule failed: %w", err)
	} else if ok {
		insights = append(insights, insight)
	}

	if insight, ok, err := r.symptomFrequency(days, now); err != nil {
		return insights, fmt.Errorf("symptom rule failed: %w", err)
	} else if ok {
		insights = append(insights, insight)
	}

	return insights, nil
}

// medicationAdherence compares logged doses against expected doses (active
// obligations times days in window). Middling adherence produces no insight
// at all rather than a lukewarm statement.
func (r *Rules) medicationAdherence(days int, now time.Time) (models.RuleInsight, bool, error) {
	obligations, err := r.logs.GetAllObligations()
	if err != nil {
		return models.RuleInsight{}, false, err
	}

	active := 0
	for _, o := range obligations {
		if o.Active {
			active++
		}
	}
	if active == 0 {
		return models.RuleInsight{}, false, nil
	}

	logs, err := r.logsInWindow(constants.CategoryMedication, days, now)
	if err != nil {
		return models.RuleInsight{}, false, err
	}

	expected := active * days
	pct := len(logs) * 100 / expected

	switch {
	case pct >= adherenceExcellentPct:
		return models.RuleInsight{
			ID:         "rule-adherence-excellent",
			Category:   constants.CategoryMedication,
			Message:    "Medication adherence has been excellent this week.",
			Concern:    false,
			DataPoints: len(logs),
		}, true, nil
	case pct < adherenceConcernPct:
		return models.RuleInsight{
			ID:         "rule-adherence-concern",
			Category:   constants.CategoryMedication,
			Message:    fmt.Sprintf("Doses were logged for about %d%% of scheduled medications recently.", pct),
			Concern:    true,
			DataPoints: len(logs),
		}, true, nil
	default:
		return models.RuleInsight{}, false, nil
	}
}

// lateLogging fires when at least half of the window's medication logs land
// after the evening cutoff.
func (r *Rules) lateLogging(days int, now time.Time) (models.RuleInsight, bool, error) {
	logs, err := r.logsInWindow(constants.CategoryMedication, days, now)
	if err != nil {
		return models.RuleInsight{}, false, err
	}
	if len(logs) < constants.BaselineMinDays {
		return models.RuleInsight{}, false, nil
	}

	late := 0
	for _, log := range logs {
		if utils.MinuteOfDay(log.Timestamp) >= lateLoggingCutoffMin {
			late++
		}
	}
	if late*2 < len(logs) {
		return models.RuleInsight{}, false, nil
	}

	return models.RuleInsight{
		ID:         "rule-late-logging",
		Category:   constants.CategoryMedication,
		Message:    "Many doses are being logged late in the evening. An earlier routine might be easier to keep.",
		Concern:    true,
		DataPoints: late,
	}, true, nil
}

// symptomFrequency fires when symptoms were logged on several distinct days
// in the window.
func (r *Rules) symptomFrequency(days int, now time.Time) (models.RuleInsight, bool, error) {
	logs, err := r.logsInWindow(constants.CategorySymptom, days, now)
	if err != nil {
		return models.RuleInsight{}, false, err
	}

	daysSeen := make(map[string]bool)
	for _, log := range logs {
		daysSeen[log.Day] = true
	}
	if len(daysSeen) < symptomFrequencyDays {
		return models.RuleInsight{}, false, nil
	}

	return models.RuleInsight{
		ID:         "rule-symptom-frequency",
		Category:   constants.CategorySymptom,
		Message:    fmt.Sprintf("Symptoms were logged on %d of the last %d days.", len(daysSeen), days),
		Concern:    true,
		DataPoints: len(daysSeen),
	}, true, nil
}

func (r *Rules) logsInWindow(category constants.LogCategory, days int, now time.Time) ([]models.DailyLog, error) {
	start := utils.DayString(now.AddDate(0, 0, -(days - 1)))
	end := utils.DayString(now)
	return r.logs.GetLogs(category, start, end)
}
