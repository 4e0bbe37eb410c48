package settingsview

import (
	"fmt"

	"github.com/mwhitfield/caretrack/internal/cli"
	"github.com/mwhitfield/caretrack/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Enabled               *bool   `help:"Enable or disable reminders."`
	ReminderMinutesBefore *int    `help:"Minutes before the scheduled dose to remind."`
	SoundEnabled          *bool   `help:"Play a sound with delivered reminders."`
	VibrationEnabled      *bool   `help:"Vibrate with delivered reminders."`
	OverdueAlertsEnabled  *bool   `help:"Register a second overdue alert per dose."`
	GracePeriodMinutes    *int    `help:"Minutes after a dose before it counts as overdue."`
	OverdueAlertMinutes   *int    `help:"Minutes after the grace period before the overdue alert."`
	QuietHoursEnabled     *bool   `help:"Suppress deliveries during the quiet-hours window."`
	QuietHoursStart       *string `help:"Quiet hours start (HH:MM; may be later than end for an overnight window)."`
	QuietHoursEnd         *string `help:"Quiet hours end (HH:MM)."`
	Timezone              *string `help:"IANA timezone name, or 'Local'."`
}

func (c *SettingsCmd) Validate() error {
	if c.QuietHoursStart != nil && !utils.ValidateTimeFormat(*c.QuietHoursStart) {
		return fmt.Errorf("invalid quiet hours start (expected HH:MM): %s", *c.QuietHoursStart)
	}
	if c.QuietHoursEnd != nil && !utils.ValidateTimeFormat(*c.QuietHoursEnd) {
		return fmt.Errorf("invalid quiet hours end (expected HH:MM): %s", *c.QuietHoursEnd)
	}
	if c.Timezone != nil {
		if _, err := utils.LoadLocation(*c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone: %w", err)
		}
	}
	return nil
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Reminder Settings:")
		fmt.Printf("  Enabled:                 %v\n", settings.Enabled)
		fmt.Printf("  Reminder Minutes Before: %d\n", settings.ReminderMinutesBefore)
		fmt.Printf("  Sound Enabled:           %v\n", settings.SoundEnabled)
		fmt.Printf("  Vibration Enabled:       %v\n", settings.VibrationEnabled)
		fmt.Println("\nOverdue Alerts:")
		fmt.Printf("  Overdue Alerts Enabled:  %v\n", settings.OverdueAlertsEnabled)
		fmt.Printf("  Grace Period:            %d min\n", settings.GracePeriodMinutes)
		fmt.Printf("  Overdue Alert After:     %d min\n", settings.OverdueAlertMinutes)
		fmt.Println("\nQuiet Hours:")
		fmt.Printf("  Quiet Hours Enabled:     %v\n", settings.QuietHoursEnabled)
		fmt.Printf("  Window:                  %s–%s\n", settings.QuietHoursStart, settings.QuietHoursEnd)
		fmt.Printf("\n  Timezone:                %s\n", settings.Timezone)
		return nil
	}

	updated := false
	if c.Enabled != nil {
		settings.Enabled = *c.Enabled
		updated = true
	}
	if c.ReminderMinutesBefore != nil {
		settings.ReminderMinutesBefore = *c.ReminderMinutesBefore
		updated = true
	}
	if c.SoundEnabled != nil {
		settings.SoundEnabled = *c.SoundEnabled
		updated = true
	}
	if c.VibrationEnabled != nil {
		settings.VibrationEnabled = *c.VibrationEnabled
		updated = true
	}
	if c.OverdueAlertsEnabled != nil {
		settings.OverdueAlertsEnabled = *c.OverdueAlertsEnabled
		updated = true
	}
	if c.GracePeriodMinutes != nil {
		settings.GracePeriodMinutes = *c.GracePeriodMinutes
		updated = true
	}
	if c.OverdueAlertMinutes != nil {
		settings.OverdueAlertMinutes = *c.OverdueAlertMinutes
		updated = true
	}
	if c.QuietHoursEnabled != nil {
		settings.QuietHoursEnabled = *c.QuietHoursEnabled
		updated = true
	}
	if c.QuietHoursStart != nil {
		settings.QuietHoursStart = *c.QuietHoursStart
		updated = true
	}
	if c.QuietHoursEnd != nil {
		settings.QuietHoursEnd = *c.QuietHoursEnd
		updated = true
	}
	if c.Timezone != nil {
		settings.Timezone = *c.Timezone
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	// Any settings change invalidates the registered trigger set.
	if err := ctx.Reschedule(); err != nil {
		return fmt.Errorf("settings saved but rescheduling failed: %w", err)
	}

	fmt.Println("Settings updated successfully.")
	return nil
}
