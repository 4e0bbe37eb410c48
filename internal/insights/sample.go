package insights

import (
	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/models"
)

// sampleData is the fixed, clearly-labeled dataset shown to users with too
// little history for real analysis. The first viewing leads with an
// explanation of what insights are; later viewings lead with a progress nudge.
func sampleData(firstView bool, daysOfData int) models.InsightData {
	intro := "Example: here's what insights look like once you've been tracking for a while."
	if !firstView {
		intro = "Example: keep logging daily and your own insights will appear here."
	}

	suggestion := &models.Suggestion{
		ID:   "sample-walk-timing",
		Text: "You could try a short walk after lunch. Check with your care team before changing any routine.",
	}

	return models.InsightData{
		StandOut: []models.Insight{
			{
				ID:         "sample-intro",
				Category:   constants.CategoryMedication,
				Message:    intro,
				Confidence: models.ConfidenceStrong,
			},
			{
				ID:         "sample-standout-meals",
				Category:   constants.CategoryMeal,
				Message:    "Example: meals were logged later than usual on 3 of the last 7 days.",
				Confidence: models.ConfidenceEmerging,
			},
		},
		Positive: []models.Insight{
			{
				ID:         "sample-positive-meds",
				Category:   constants.CategoryMedication,
				Message:    "Example: medication adherence has been excellent this week.",
				Confidence: models.ConfidenceStrong,
			},
		},
		Correlations: []models.CorrelationCard{
			{
				Correlation: models.Correlation{
					ID:          "sample-corr-sleep-mood",
					Category:    constants.CategorySleep,
					FactorA:     "short sleep",
					FactorB:     "low mood",
					Description: "Example: low-mood days tended to follow nights with under 6 hours of sleep.",
					Strength:    models.StrengthModerate,
					SampleDays:  5,
				},
				Confidence: models.ConfidenceEmerging,
				Suggestion: suggestion,
			},
		},
		IsSampleData: true,
		DaysOfData:   daysOfData,
	}
}
