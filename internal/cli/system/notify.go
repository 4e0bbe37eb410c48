package system

import (
	"fmt"

	"github.com/mwhitfield/caretrack/internal/cli"
	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/logger"
	"github.com/mwhitfield/caretrack/internal/scheduler"
	"github.com/mwhitfield/caretrack/internal/utils"
)

// NotifyCmd is the delivery loop, run every minute from cron (or a systemd
// timer). It scans the trigger registry for due triggers and surfaces them
// as desktop notifications.
type NotifyCmd struct {
	DryRun bool `help:"Print due notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if !ctx.Notifier.HasPermission() {
		if c.DryRun {
			fmt.Println("Notifications are not enabled.")
		}
		return nil
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.Enabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return err
	}

	// Registration never consults quiet hours; suppression happens here, at
	// delivery time. Triggers due during the window simply stay quiet.
	if scheduler.IsInQuietHours(settings, now) {
		logger.Debug("Within quiet hours, suppressing delivery")
		if c.DryRun {
			fmt.Println("Within quiet hours; deliveries suppressed.")
		}
		return nil
	}

	if c.DryRun {
		triggers, err := ctx.Store.GetTriggers()
		if err != nil {
			return fmt.Errorf("failed to read triggers: %w", err)
		}
		for _, trigger := range triggers {
			when := fmt.Sprintf("daily at %02d:%02d", trigger.Hour, trigger.Minute)
			if !trigger.Recurring {
				when = fmt.Sprintf("once at %s", trigger.FireAt.Format("2006-01-02 15:04"))
			}
			fmt.Printf("[DryRun] %s: %s (%s)\n", when, trigger.Payload.Title, trigger.Payload.Body)
		}
		return nil
	}

	deliveries, err := ctx.Notifier.DeliverDue(now, settings.SoundEnabled)
	if err != nil {
		return err
	}
	for _, delivery := range deliveries {
		logger.Info("Delivered notification", "id", delivery.ID, "kind", delivery.Payload.Kind)
	}
	return nil
}

type NotifyEnableCmd struct{}

func (c *NotifyEnableCmd) Run(ctx *cli.Context) error {
	if !ctx.Notifier.RequestPermission() {
		return fmt.Errorf("failed to enable notifications")
	}
	if err := ctx.Reschedule(); err != nil {
		return fmt.Errorf("notifications enabled but rescheduling failed: %w", err)
	}

	fmt.Println("Notifications enabled. Add this to your crontab for delivery:")
	fmt.Println("  * * * * * caretrack notify")
	return nil
}

type NotifyDisableCmd struct{}

func (c *NotifyDisableCmd) Run(ctx *cli.Context) error {
	ctx.Notifier.RevokePermission()

	// Clear both the recurring reminders and any pending one-time triggers.
	if err := ctx.Notifier.CancelAll(); err != nil {
		return fmt.Errorf("failed to cancel reminder triggers: %w", err)
	}
	if err := ctx.Store.DeleteTriggersByOwner(constants.OwnerOneTime); err != nil {
		return fmt.Errorf("failed to cancel pending triggers: %w", err)
	}

	fmt.Println("Notifications disabled.")
	return nil
}
