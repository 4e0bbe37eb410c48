package models

// Settings represents the device-wide notification settings profile
type Settings struct {
	Enabled               bool   `json:"notifications_enabled"`   // whether reminders are enabled at all
	ReminderMinutesBefore int    `json:"reminder_minutes_before"` // lead time before the scheduled dose
	SoundEnabled          bool   `json:"sound_enabled"`           // whether delivered reminders play a sound
	VibrationEnabled      bool   `json:"vibration_enabled"`       // whether delivered reminders vibrate
	OverdueAlertsEnabled  bool   `json:"overdue_alerts_enabled"`  // whether a second overdue trigger is registered
	GracePeriodMinutes    int    `json:"grace_period_minutes"`    // minutes after the dose before it counts as overdue
	OverdueAlertMinutes   int    `json:"overdue_alert_minutes"`   // minutes after the grace period before the overdue alert
	QuietHoursEnabled     bool   `json:"quiet_hours_enabled"`     // whether the quiet-hours window applies
	QuietHoursStart       string `json:"quiet_hours_start"`       // HH:MM; may be later than end (overnight window)
	QuietHoursEnd         string `json:"quiet_hours_end"`         // HH:MM
	Timezone              string `json:"timezone"`                // IANA timezone name, or "Local" for system timezone
}
