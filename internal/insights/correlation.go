package insights

import (
	"fmt"
	"time"

	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/models"
	"github.com/mwhitfield/caretrack/internal/utils"
)

// Co-occurrence day counts for each strength tier.
const (
	correlationMinDays      = 2
	correlationModerateDays = 4
	correlationHighDays     = 6
)

// CorrelationLogReader is the slice of the storage provider the detector
// reads from.
type CorrelationLogReader interface {
	GetLogs(category constants.LogCategory, startDay, endDay string) ([]models.DailyLog, error)
	GetLogsForDay(category constants.LogCategory, day string) ([]models.DailyLog, error)
}

// BaselineSource supplies the typical daily count the detector compares
// against.
type BaselineSource interface {
	CalculateBaseline(category constants.LogCategory, today time.Time) models.CategoryBaseline
}

// CoOccurrence detects same-day relationships between symptom days and
// below-baseline days in each tracked category. Pure counting over the
// window, no modeling.
type CoOccurrence struct {
	logs      CorrelationLogReader
	baselines BaselineSource
}

func NewCoOccurrence(logs CorrelationLogReader, baselines BaselineSource) *CoOccurrence {
	return &CoOccurrence{logs: logs, baselines: baselines}
}

// Detect scans the window of `days` ending at now and returns one
// correlation per tracked category whose below-baseline days lined up with
// symptom days often enough to report.
func (d *CoOccurrence) Detect(days int, now time.Time) ([]models.Correlation, error) {
	symptomDays, err := d.symptomDays(days, now)
	if err != nil {
		return nil, fmt.Errorf("failed to read symptom logs: %w", err)
	}
	if len(symptomDays) == 0 {
		return nil, nil
	}

	var correlations []models.Correlation
	for _, category := range constants.TrackedCategories {
		b := d.baselines.CalculateBaseline(category, now)
		if b.Confidence == models.ConfidenceNone {
			continue
		}

		matched := 0
		for i := 0; i < days; i++ {
			day := utils.DayString(now.AddDate(0, 0, -i))
			if !symptomDays[day] {
				continue
			}
			count, err := d.countForDay(category, day)
			if err != nil {
				return correlations, err
			}
			if count < b.DailyCount {
				matched++
			}
		}
		if matched < correlationMinDays {
			continue
		}

		correlations = append(correlations, models.Correlation{
			ID:       fmt.Sprintf("corr-symptom-%s", category),
			Category: category,
			FactorA:  "symptom days",
			FactorB:  fmt.Sprintf("fewer %s entries than usual", category),
			Description: fmt.Sprintf(
				"On %d of the last %d days, symptoms were logged on days with fewer %s entries than usual.",
				matched, days, category),
			Strength:   strengthForDays(matched),
			SampleDays: matched,
		})
	}

	return correlations, nil
}

func (d *CoOccurrence) symptomDays(days int, now time.Time) (map[string]bool, error) {
	start := utils.DayString(now.AddDate(0, 0, -(days - 1)))
	end := utils.DayString(now)

	logs, err := d.logs.GetLogs(constants.CategorySymptom, start, end)
	if err != nil {
		return nil, err
	}

	daysSeen := make(map[string]bool)
	for _, log := range logs {
		daysSeen[log.Day] = true
	}
	return daysSeen, nil
}

func (d *CoOccurrence) countForDay(category constants.LogCategory, day string) (int, error) {
	logs, err := d.logs.GetLogsForDay(category, day)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s logs for %s: %w", category, day, err)
	}

	count := 0
	for _, log := range logs {
		count += log.CountsAs()
	}
	return count, nil
}

func strengthForDays(days int) models.CorrelationStrength {
	switch {
	case days >= correlationHighDays:
		return models.StrengthHigh
	case days >= correlationModerateDays:
		return models.StrengthModerate
	default:
		return models.StrengthLow
	}
}
