package meds

import (
	"fmt"

	"github.com/mwhitfield/caretrack/internal/cli"
)

type MedDeleteCmd struct {
	ID string `arg:"" help:"Medication ID."`
}

func (c *MedDeleteCmd) Run(ctx *cli.Context) error {
	obligation, err := ctx.Store.GetObligation(c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteObligation(c.ID); err != nil {
		return err
	}

	// The full rebuild drops the deleted medication's triggers with it.
	if err := ctx.Reschedule(); err != nil {
		return fmt.Errorf("medication deleted but rescheduling failed: %w", err)
	}

	fmt.Printf("Deleted medication: %s\n", obligation.Name)
	return nil
}
