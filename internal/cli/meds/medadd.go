package meds

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitfield/caretrack/internal/cli"
	"github.com/mwhitfield/caretrack/internal/models"
	"github.com/mwhitfield/caretrack/internal/utils"
)

type MedAddCmd struct {
	Name   string `arg:"" help:"Medication name."`
	Time   string `short:"t" help:"Scheduled time (HH:MM)." required:""`
	Dosage string `short:"d" help:"Dosage description (e.g. '10mg')."`
}

func (c *MedAddCmd) Validate() error {
	if !utils.ValidateTimeFormat(c.Time) {
		return fmt.Errorf("invalid time format (expected HH:MM): %s", c.Time)
	}
	return nil
}

func (c *MedAddCmd) Run(ctx *cli.Context) error {
	obligation := models.Obligation{
		ID:        uuid.New().String(),
		Name:      c.Name,
		Dosage:    c.Dosage,
		Time:      c.Time,
		Active:    true,
		CreatedAt: time.Now(),
	}

	if err := obligation.Validate(); err != nil {
		return fmt.Errorf("invalid medication: %w", err)
	}

	if err := ctx.Store.AddObligation(obligation); err != nil {
		return err
	}

	if err := ctx.Reschedule(); err != nil {
		return fmt.Errorf("medication added but rescheduling failed: %w", err)
	}

	fmt.Printf("Added medication: %s at %s (ID: %s)\n", c.Name, c.Time, obligation.ID)
	return nil
}
