// Package baselines is the baseline review surface: listing the computed
// typical-day counts and recording the user's verdict on them.
package baselines

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/mwhitfield/caretrack/internal/baseline"
	"github.com/mwhitfield/caretrack/internal/cli"
	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/models"
)

type BaselineListCmd struct {
	Review bool `short:"r" help:"Interactively confirm or reject unconfirmed baselines."`
}

func (c *BaselineListCmd) Run(ctx *cli.Context) error {
	now := time.Now()
	data := ctx.Baselines.GetAllBaselines(now)

	if len(data.Baselines) == 0 {
		fmt.Println("No baselines yet. Keep logging for a few days and check back.")
		return nil
	}

	comparisons := make(map[constants.LogCategory]models.BaselineComparison)
	for _, comparison := range ctx.Baselines.GetAllTodayVsBaseline(now) {
		comparisons[comparison.Category] = comparison
	}

	fmt.Println(cli.HeadingStyle.Render("Your typical day"))
	for _, b := range data.Baselines {
		state := data.States[b.Category]

		// Confirmation locks the wording, nothing else.
		framing := "so far"
		if state.Confirmed {
			framing = "usually"
		}
		fmt.Printf("  %-12s %s %d per day %s\n",
			b.Category, framing, b.DailyCount,
			cli.MutedStyle.Render(fmt.Sprintf("(%s, %d days)", b.Confidence, b.DaysOfData)))

		if comparison, ok := comparisons[b.Category]; ok {
			if comparison.BelowBaseline {
				fmt.Printf("               today: %s\n",
					cli.ConcernStyle.Render(fmt.Sprintf("%d so far, below usual", comparison.TodayCount)))
			} else {
				fmt.Printf("               today: %s\n",
					cli.PositiveStyle.Render(fmt.Sprintf("%d, on track", comparison.TodayCount)))
			}
		}
	}

	if c.Review {
		return c.review(ctx, data)
	}
	return nil
}

func (c *BaselineListCmd) review(ctx *cli.Context, data baseline.BaselineData) error {
	reviewed := 0
	for _, b := range data.Baselines {
		state := data.States[b.Category]
		if state.Confirmed || state.PromptDismissed {
			continue
		}

		var choice string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(fmt.Sprintf("Does '%d %s per day' sound like your typical day?", b.DailyCount, b.Category)).
					Options(
						huh.NewOption("Yes, that's typical", "confirm"),
						huh.NewOption("Not quite", "reject"),
						huh.NewOption("Stop asking about this", "dismiss"),
						huh.NewOption("Skip for now", "skip"),
					).
					Value(&choice),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}

		switch choice {
		case "confirm":
			if err := ctx.Baselines.Confirm(b.Category); err != nil {
				return err
			}
			reviewed++
		case "reject":
			if err := ctx.Baselines.Reject(b.Category); err != nil {
				return err
			}
			reviewed++
		case "dismiss":
			if err := ctx.Baselines.DismissPrompt(b.Category); err != nil {
				return err
			}
			reviewed++
		}
	}

	if reviewed == 0 {
		fmt.Println("Nothing to review.")
	}
	return nil
}

type BaselineConfirmCmd struct {
	Category string `arg:"" help:"Category to confirm (meal|vitals|medication)."`
}

func (c *BaselineConfirmCmd) Run(ctx *cli.Context) error {
	category, err := trackedCategory(c.Category)
	if err != nil {
		return err
	}
	if err := ctx.Baselines.Confirm(category); err != nil {
		return err
	}
	fmt.Printf("Confirmed %s baseline.\n", category)
	return nil
}

type BaselineRejectCmd struct {
	Category string `arg:"" help:"Category to reject (meal|vitals|medication)."`
}

func (c *BaselineRejectCmd) Run(ctx *cli.Context) error {
	category, err := trackedCategory(c.Category)
	if err != nil {
		return err
	}
	if err := ctx.Baselines.Reject(category); err != nil {
		return err
	}
	fmt.Printf("Rejected %s baseline. It will keep recomputing as you log.\n", category)
	return nil
}

type BaselineDismissCmd struct {
	Category string `arg:"" help:"Category to stop prompting about (meal|vitals|medication)."`
}

func (c *BaselineDismissCmd) Run(ctx *cli.Context) error {
	category, err := trackedCategory(c.Category)
	if err != nil {
		return err
	}
	if err := ctx.Baselines.DismissPrompt(category); err != nil {
		return err
	}
	fmt.Printf("Will no longer ask about the %s baseline.\n", category)
	return nil
}

func trackedCategory(s string) (constants.LogCategory, error) {
	category, err := models.ParseCategory(s)
	if err != nil {
		return "", err
	}
	for _, tracked := range constants.TrackedCategories {
		if category == tracked {
			return category, nil
		}
	}
	return "", fmt.Errorf("no baseline is tracked for category: %s", s)
}
