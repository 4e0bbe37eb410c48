// Package insightview renders the insight lists in the terminal.
package insightview

import (
	"fmt"
	"time"

	"github.com/mwhitfield/caretrack/internal/cli"
	"github.com/mwhitfield/caretrack/internal/models"
)

type InsightsCmd struct {
	Days int `help:"Lookback window in days." default:"7" enum:"7,14,30"`

	DismissSuggestion string `help:"Dismiss a suggestion by its ID." placeholder:"ID"`
	DismissSamples    bool   `help:"Permanently hide the example insights."`
}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	if c.DismissSuggestion != "" {
		if err := ctx.Insights.DismissSuggestion(c.DismissSuggestion); err != nil {
			return fmt.Errorf("failed to dismiss suggestion: %w", err)
		}
		fmt.Println("Suggestion dismissed.")
		return nil
	}
	if c.DismissSamples {
		if err := ctx.Insights.DismissSampleData(); err != nil {
			return fmt.Errorf("failed to dismiss example insights: %w", err)
		}
		fmt.Println("Example insights hidden.")
		return nil
	}

	data := ctx.Insights.LoadInsightData(c.Days, time.Now())

	if data.IsSampleData {
		fmt.Println(cli.MutedStyle.Render("Showing example insights. Keep logging to see your own."))
		fmt.Println(cli.MutedStyle.Render("Hide them permanently with 'caretrack insights --dismiss-samples'."))
		fmt.Println()
	} else {
		fmt.Println(cli.MutedStyle.Render(fmt.Sprintf("Based on %d day(s) of data.", data.DaysOfData)))
		fmt.Println()
	}

	if len(data.StandOut) > 0 {
		fmt.Println(cli.HeadingStyle.Render("Stands out"))
		for _, insight := range data.StandOut {
			fmt.Printf("  • %s %s\n", cli.ConcernStyle.Render(insight.Message), cli.ConfidenceBadge(insight.Confidence))
		}
		fmt.Println()
	}

	if len(data.Positive) > 0 {
		fmt.Println(cli.HeadingStyle.Render("Going well"))
		for _, insight := range data.Positive {
			fmt.Printf("  • %s %s\n", cli.PositiveStyle.Render(insight.Message), cli.ConfidenceBadge(insight.Confidence))
		}
		fmt.Println()
	}

	if len(data.Correlations) > 0 {
		fmt.Println(cli.HeadingStyle.Render("Patterns"))
		for _, card := range data.Correlations {
			renderCard(card)
		}
	}

	if len(data.StandOut) == 0 && len(data.Positive) == 0 && len(data.Correlations) == 0 {
		fmt.Println("Nothing to report yet. Keep tracking daily.")
	}
	return nil
}

func renderCard(card models.CorrelationCard) {
	fmt.Printf("  • %s %s\n", card.Correlation.Description, cli.ConfidenceBadge(card.Confidence))
	fmt.Printf("    %s\n", cli.MutedStyle.Render(
		fmt.Sprintf("%s / %s, seen on %d day(s)",
			card.Correlation.FactorA, card.Correlation.FactorB, card.Correlation.SampleDays)))
	if card.Suggestion != nil {
		fmt.Printf("    %s\n", card.Suggestion.Text)
		fmt.Printf("    %s\n", cli.MutedStyle.Render(
			fmt.Sprintf("(dismiss with --dismiss-suggestion %s)", card.Suggestion.ID)))
	}
}
