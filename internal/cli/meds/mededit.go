package meds

import (
	"fmt"

	"github.com/mwhitfield/caretrack/internal/cli"
	"github.com/mwhitfield/caretrack/internal/utils"
)

type MedEditCmd struct {
	ID     string  `arg:"" help:"Medication ID."`
	Name   *string `help:"New medication name."`
	Time   *string `short:"t" help:"New scheduled time (HH:MM)."`
	Dosage *string `short:"d" help:"New dosage description."`
	Active *bool   `help:"Activate or deactivate the medication."`
}

func (c *MedEditCmd) Validate() error {
	if c.Time != nil && !utils.ValidateTimeFormat(*c.Time) {
		return fmt.Errorf("invalid time format (expected HH:MM): %s", *c.Time)
	}
	return nil
}

func (c *MedEditCmd) Run(ctx *cli.Context) error {
	obligation, err := ctx.Store.GetObligation(c.ID)
	if err != nil {
		return err
	}

	updated := false
	if c.Name != nil {
		obligation.Name = *c.Name
		updated = true
	}
	if c.Time != nil {
		obligation.Time = *c.Time
		updated = true
	}
	if c.Dosage != nil {
		obligation.Dosage = *c.Dosage
		updated = true
	}
	if c.Active != nil {
		obligation.Active = *c.Active
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified.")
		return nil
	}

	if err := obligation.Validate(); err != nil {
		return fmt.Errorf("invalid medication: %w", err)
	}
	if err := ctx.Store.UpdateObligation(obligation); err != nil {
		return err
	}

	if err := ctx.Reschedule(); err != nil {
		return fmt.Errorf("medication updated but rescheduling failed: %w", err)
	}

	fmt.Printf("Updated medication: %s\n", obligation.Name)
	return nil
}
