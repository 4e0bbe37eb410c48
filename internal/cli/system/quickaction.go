package system

import (
	"fmt"
	"time"

	"github.com/mwhitfield/caretrack/internal/cli"
	"github.com/mwhitfield/caretrack/internal/models"
)

// Snooze and mark-done resolve a delivered notification by its delivery ID
// (shown in the notification log). Each disposition is independent; a
// delivery can be resolved exactly once.

func pendingDelivery(ctx *cli.Context, id string) (models.Delivery, error) {
	delivery, err := ctx.Store.GetDelivery(id)
	if err != nil {
		return models.Delivery{}, err
	}
	if delivery.Snoozed {
		return models.Delivery{}, fmt.Errorf("delivery %s was already snoozed", id)
	}
	if delivery.Dismissed {
		return models.Delivery{}, fmt.Errorf("delivery %s was already resolved", id)
	}
	return delivery, nil
}

type SnoozeCmd struct {
	ID string `arg:"" help:"Delivery ID of the reminder to snooze."`
}

func (c *SnoozeCmd) Run(ctx *cli.Context) error {
	delivery, err := pendingDelivery(ctx, c.ID)
	if err != nil {
		return err
	}

	handle, err := ctx.Scheduler.Snooze(delivery.Payload, time.Now())
	if err != nil {
		return fmt.Errorf("failed to snooze: %w", err)
	}

	delivery.Snoozed = true
	if err := ctx.Store.UpdateDelivery(delivery); err != nil {
		return fmt.Errorf("snoozed but failed to record disposition: %w", err)
	}

	fmt.Printf("Snoozed %s (trigger %s).\n", delivery.Payload.Title, handle)
	return nil
}

type DoneCmd struct {
	ID string `arg:"" help:"Delivery ID of the reminder to mark done."`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	delivery, err := pendingDelivery(ctx, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Scheduler.MarkDone(delivery.Payload, time.Now()); err != nil {
		return err
	}

	delivery.Dismissed = true
	if err := ctx.Store.UpdateDelivery(delivery); err != nil {
		return fmt.Errorf("marked done but failed to record disposition: %w", err)
	}

	fmt.Printf("Marked done: %s\n", delivery.Payload.Title)
	return nil
}
