package insights

import (
	"testing"
	"time"

	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/models"
	"github.com/mwhitfield/caretrack/internal/utils"
)

type fakeRuleLogs struct {
	obligations []models.Obligation
	logs        map[constants.LogCategory][]models.DailyLog
}

func (f *fakeRuleLogs) GetLogs(category constants.LogCategory, startDay, endDay string) ([]models.DailyLog, error) {
	var logs []models.DailyLog
	for _, log := range f.logs[category] {
		if log.Day >= startDay && log.Day <= endDay {
			logs = append(logs, log)
		}
	}
	return logs, nil
}

func (f *fakeRuleLogs) GetAllObligations() ([]models.Obligation, error) {
	return f.obligations, nil
}

// medLogsAt spreads one medication log per day over the last n days, at the
// given hour.
func medLogsAt(now time.Time, n, hour int) []models.DailyLog {
	var logs []models.DailyLog
	for i := 0; i < n; i++ {
		day := now.AddDate(0, 0, -i)
		logs = append(logs, models.DailyLog{
			ID:           "log",
			Category:     constants.CategoryMedication,
			ObligationID: "obl",
			Timestamp:    time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC),
			Day:          utils.DayString(day),
		})
	}
	return logs
}

func insightByID(insights []models.RuleInsight, id string) (models.RuleInsight, bool) {
	for _, insight := range insights {
		if insight.ID == id {
			return insight, true
		}
	}
	return models.RuleInsight{}, false
}

func TestMedicationAdherenceRule(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	obligation := models.Obligation{ID: "obl", Name: "Lisinopril", Time: "09:00", Active: true}

	tests := []struct {
		name        string
		loggedDays  int
		wantID      string
		wantConcern bool
	}{
		{name: "full adherence is excellent", loggedDays: 7, wantID: "rule-adherence-excellent"},
		{name: "sparse adherence is a concern", loggedDays: 3, wantID: "rule-adherence-concern", wantConcern: true},
		{name: "middling adherence stays silent", loggedDays: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := &fakeRuleLogs{
				obligations: []models.Obligation{obligation},
				logs: map[constants.LogCategory][]models.DailyLog{
					constants.CategoryMedication: medLogsAt(now, tt.loggedDays, 9),
				},
			}

			insights, err := NewRules(logs).Evaluate(7, now)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}

			if tt.wantID == "" {
				if _, ok := insightByID(insights, "rule-adherence-excellent"); ok {
					t.Error("unexpected excellent-adherence insight")
				}
				if _, ok := insightByID(insights, "rule-adherence-concern"); ok {
					t.Error("unexpected adherence-concern insight")
				}
				return
			}

			insight, ok := insightByID(insights, tt.wantID)
			if !ok {
				t.Fatalf("missing insight %q in %v", tt.wantID, insights)
			}
			if insight.Concern != tt.wantConcern {
				t.Errorf("Concern = %v, want %v", insight.Concern, tt.wantConcern)
			}
			if insight.Category != constants.CategoryMedication {
				t.Errorf("Category = %q, want medication", insight.Category)
			}
		})
	}
}

func TestAdherenceRuleNoObligations(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	logs := &fakeRuleLogs{logs: map[constants.LogCategory][]models.DailyLog{
		constants.CategoryMedication: medLogsAt(now, 7, 9),
	}}

	insights, err := NewRules(logs).Evaluate(7, now)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if _, ok := insightByID(insights, "rule-adherence-excellent"); ok {
		t.Error("adherence rule fired with no active obligations")
	}
}

func TestLateLoggingRule(t *testing.T) {
	now := time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC)
	obligation := models.Obligation{ID: "obl", Name: "Lisinopril", Time: "09:00", Active: true}

	t.Run("mostly evening doses fire the rule", func(t *testing.T) {
		logs := &fakeRuleLogs{
			obligations: []models.Obligation{obligation},
			logs: map[constants.LogCategory][]models.DailyLog{
				constants.CategoryMedication: medLogsAt(now, 6, 22),
			},
		}

		insights, err := NewRules(logs).Evaluate(7, now)
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		insight, ok := insightByID(insights, "rule-late-logging")
		if !ok {
			t.Fatal("missing late-logging insight")
		}
		if !insight.Concern {
			t.Error("late-logging insight not marked as a concern")
		}
	})

	t.Run("morning doses stay silent", func(t *testing.T) {
		logs := &fakeRuleLogs{
			obligations: []models.Obligation{obligation},
			logs: map[constants.LogCategory][]models.DailyLog{
				constants.CategoryMedication: medLogsAt(now, 6, 9),
			},
		}

		insights, err := NewRules(logs).Evaluate(7, now)
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if _, ok := insightByID(insights, "rule-late-logging"); ok {
			t.Error("late-logging insight fired on morning doses")
		}
	})
}

func TestSymptomFrequencyRule(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	symptomLogs := func(days int) []models.DailyLog {
		var logs []models.DailyLog
		for i := 0; i < days; i++ {
			day := now.AddDate(0, 0, -i)
			logs = append(logs, models.DailyLog{
				ID:        "log",
				Category:  constants.CategorySymptom,
				Timestamp: day,
				Day:       utils.DayString(day),
				Value:     "dizziness",
			})
		}
		return logs
	}

	t.Run("three symptom days fire the rule", func(t *testing.T) {
		logs := &fakeRuleLogs{logs: map[constants.LogCategory][]models.DailyLog{
			constants.CategorySymptom: symptomLogs(3),
		}}

		insights, err := NewRules(logs).Evaluate(7, now)
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		insight, ok := insightByID(insights, "rule-symptom-frequency")
		if !ok {
			t.Fatal("missing symptom-frequency insight")
		}
		if insight.DataPoints != 3 {
			t.Errorf("DataPoints = %d, want 3", insight.DataPoints)
		}
	})

	t.Run("two symptom days stay silent", func(t *testing.T) {
		logs := &fakeRuleLogs{logs: map[constants.LogCategory][]models.DailyLog{
			constants.CategorySymptom: symptomLogs(2),
		}}

		insights, err := NewRules(logs).Evaluate(7, now)
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if _, ok := insightByID(insights, "rule-symptom-frequency"); ok {
			t.Error("symptom-frequency insight fired on two days")
		}
	})
}
