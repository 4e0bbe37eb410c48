package models

import (
	"fmt"
	"time"

	"github.com/mwhitfield/caretrack/internal/constants"
)

// DailyLog is one immutable append-only record in a tracked category. A log
// always carries its instant and the derived local calendar day; the other
// fields depend on the category.
type DailyLog struct {
	ID           string                `json:"id"`
	Category     constants.LogCategory `json:"category"`
	Timestamp    time.Time             `json:"timestamp"`
	Day          string                `json:"day"` // derived local calendar day, YYYY-MM-DD
	ObligationID string                `json:"obligation_id,omitempty"`
	Value        string                `json:"value,omitempty"` // meal kind, symptom name, mood label
	Note         string                `json:"note,omitempty"`

	// Vitals fields; nil means the field was not recorded.
	Systolic  *int     `json:"systolic,omitempty"`
	Diastolic *int     `json:"diastolic,omitempty"`
	HeartRate *int     `json:"heart_rate,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Glucose   *float64 `json:"glucose,omitempty"`
}

func (l *DailyLog) Validate() error {
	if l.Category == "" {
		return fmt.Errorf("log category cannot be empty")
	}
	if l.Timestamp.IsZero() {
		return fmt.Errorf("log timestamp cannot be zero")
	}
	if l.Category == constants.CategoryMedication && l.ObligationID == "" {
		return fmt.Errorf("medication log requires an obligation id")
	}
	return nil
}

// CountsAs returns this log's contribution to its day's category count.
// A vitals entry contributes one count per recorded field, so a day where the
// user took blood pressure and weight counts as three (systolic, diastolic,
// weight). Every other category contributes one count per log.
func (l *DailyLog) CountsAs() int {
	if l.Category != constants.CategoryVitals {
		return 1
	}

	count := 0
	if l.Systolic != nil {
		count++
	}
	if l.Diastolic != nil {
		count++
	}
	if l.HeartRate != nil {
		count++
	}
	if l.Weight != nil {
		count++
	}
	if l.Glucose != nil {
		count++
	}
	return count
}

// ParseCategory validates a user-supplied category name.
func ParseCategory(s string) (constants.LogCategory, error) {
	switch constants.LogCategory(s) {
	case constants.CategoryMedication, constants.CategoryVitals, constants.CategoryMeal,
		constants.CategoryMood, constants.CategorySleep, constants.CategorySymptom:
		return constants.LogCategory(s), nil
	default:
		return "", fmt.Errorf("unknown category: %s", s)
	}
}
