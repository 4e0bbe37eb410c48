// Package logs holds the append-only daily-log commands, one per tracked
// category.
package logs

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitfield/caretrack/internal/cli"
	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/models"
	"github.com/mwhitfield/caretrack/internal/utils"
)

// newLog stamps a fresh log entry for the category at now.
func newLog(category constants.LogCategory, now time.Time) models.DailyLog {
	return models.DailyLog{
		ID:        uuid.New().String(),
		Category:  category,
		Timestamp: now,
		Day:       utils.DayString(now),
	}
}

func saveLog(ctx *cli.Context, log models.DailyLog) error {
	if err := log.Validate(); err != nil {
		return fmt.Errorf("invalid log: %w", err)
	}
	return ctx.Store.AddLog(log)
}

// resolveObligation accepts either a medication ID or a (case-insensitive)
// name.
func resolveObligation(ctx *cli.Context, ref string) (models.Obligation, error) {
	if obligation, err := ctx.Store.GetObligation(ref); err == nil {
		return obligation, nil
	}

	obligations, err := ctx.Store.GetAllObligations()
	if err != nil {
		return models.Obligation{}, fmt.Errorf("failed to load medications: %w", err)
	}
	for _, o := range obligations {
		if strings.EqualFold(o.Name, ref) {
			return o, nil
		}
	}
	return models.Obligation{}, fmt.Errorf("no medication matching %q", ref)
}

type LogMedCmd struct {
	Medication string `arg:"" help:"Medication ID or name."`
	Note       string `short:"n" help:"Optional note."`
}

func (c *LogMedCmd) Run(ctx *cli.Context) error {
	obligation, err := resolveObligation(ctx, c.Medication)
	if err != nil {
		return err
	}

	log := newLog(constants.CategoryMedication, time.Now())
	log.ObligationID = obligation.ID
	log.Value = obligation.Name
	log.Note = c.Note

	if err := saveLog(ctx, log); err != nil {
		return err
	}
	fmt.Printf("Recorded %s as taken.\n", obligation.Name)
	return nil
}

type LogMealCmd struct {
	Kind string `arg:"" help:"Meal kind (breakfast|lunch|dinner|snack)."`
	Note string `short:"n" help:"Optional note."`
}

func (c *LogMealCmd) Run(ctx *cli.Context) error {
	log := newLog(constants.CategoryMeal, time.Now())
	log.Value = strings.ToLower(c.Kind)
	log.Note = c.Note

	if err := saveLog(ctx, log); err != nil {
		return err
	}
	fmt.Printf("Recorded meal: %s\n", log.Value)
	return nil
}

type LogMoodCmd struct {
	Mood string `arg:"" help:"Mood label (e.g. good, low, anxious)."`
	Note string `short:"n" help:"Optional note."`
}

func (c *LogMoodCmd) Run(ctx *cli.Context) error {
	log := newLog(constants.CategoryMood, time.Now())
	log.Value = strings.ToLower(c.Mood)
	log.Note = c.Note

	if err := saveLog(ctx, log); err != nil {
		return err
	}
	fmt.Printf("Recorded mood: %s\n", log.Value)
	return nil
}

type LogSleepCmd struct {
	Hours string `arg:"" help:"Hours slept (e.g. 7.5)."`
	Note  string `short:"n" help:"Optional note."`
}

func (c *LogSleepCmd) Run(ctx *cli.Context) error {
	log := newLog(constants.CategorySleep, time.Now())
	log.Value = c.Hours
	log.Note = c.Note

	if err := saveLog(ctx, log); err != nil {
		return err
	}
	fmt.Printf("Recorded sleep: %s hours\n", c.Hours)
	return nil
}

type LogSymptomCmd struct {
	Symptom string `arg:"" help:"Symptom name (e.g. dizziness)."`
	Note    string `short:"n" help:"Optional note."`
}

func (c *LogSymptomCmd) Run(ctx *cli.Context) error {
	log := newLog(constants.CategorySymptom, time.Now())
	log.Value = strings.ToLower(c.Symptom)
	log.Note = c.Note

	if err := saveLog(ctx, log); err != nil {
		return err
	}
	fmt.Printf("Recorded symptom: %s\n", log.Value)
	return nil
}
