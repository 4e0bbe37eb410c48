package system

import (
	"fmt"
	"time"

	"github.com/mwhitfield/caretrack/internal/cli"
	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/models"
)

const remindTimeLayout = "2006-01-02 15:04"

// RemindCmd registers a one-off reminder, e.g. for an appointment.
type RemindCmd struct {
	Title string `arg:"" help:"Reminder title."`
	At    string `help:"When to fire (YYYY-MM-DD HH:MM, local time)." required:""`
	Lead  int    `help:"Minutes before the event to fire." default:"0"`
	Body  string `short:"b" help:"Reminder body text."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	at, err := time.ParseInLocation(remindTimeLayout, c.At, time.Local)
	if err != nil {
		return fmt.Errorf("invalid time (expected YYYY-MM-DD HH:MM): %w", err)
	}
	fireAt := at.Add(-time.Duration(c.Lead) * time.Minute)

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	payload := models.Notification{
		Title: c.Title,
		Body:  c.Body,
		Kind:  constants.KindAppointment,
	}
	handle, err := ctx.Scheduler.ScheduleOneTime(payload, fireAt, settings)
	if err != nil {
		return err
	}
	if handle == "" {
		fmt.Println("Notifications are not enabled; no reminder was scheduled.")
		return nil
	}

	fmt.Printf("Reminder scheduled for %s.\n", fireAt.Format(remindTimeLayout))
	return nil
}
