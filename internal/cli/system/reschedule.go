package system

import (
	"fmt"

	"github.com/mwhitfield/caretrack/internal/cli"
)

type RescheduleCmd struct{}

func (c *RescheduleCmd) Run(ctx *cli.Context) error {
	if !ctx.Notifier.HasPermission() {
		fmt.Println("Notifications are not enabled. Run 'caretrack notify enable' first.")
		return nil
	}

	if err := ctx.Reschedule(); err != nil {
		return err
	}

	triggers, err := ctx.Store.GetTriggers()
	if err != nil {
		return fmt.Errorf("failed to read triggers: %w", err)
	}
	fmt.Printf("Rebuilt reminder schedule: %d trigger(s) registered.\n", len(triggers))
	return nil
}
