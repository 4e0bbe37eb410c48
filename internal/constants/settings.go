package constants

const (
	// Notification Settings
	SettingEnabled               = "notifications_enabled"
	SettingReminderMinutesBefore = "reminder_minutes_before"
	SettingSoundEnabled          = "sound_enabled"
	SettingVibrationEnabled      = "vibration_enabled"
	SettingOverdueAlertsEnabled  = "overdue_alerts_enabled"
	SettingGracePeriodMinutes    = "grace_period_minutes"
	SettingOverdueAlertMinutes   = "overdue_alert_minutes"
	SettingQuietHoursEnabled     = "quiet_hours_enabled"
	SettingQuietHoursStart       = "quiet_hours_start"
	SettingQuietHoursEnd         = "quiet_hours_end"
	SettingTimezone              = "timezone"

	// Default Settings Values
	DefaultEnabled               = true
	DefaultReminderMinutesBefore = 0
	DefaultSoundEnabled          = true
	DefaultVibrationEnabled      = true
	DefaultOverdueAlertsEnabled  = true
	DefaultGracePeriodMinutes    = 30
	DefaultOverdueAlertMinutes   = 30
	DefaultQuietHoursEnabled     = false
	DefaultQuietHoursStart       = "22:00"
	DefaultQuietHoursEnd         = "07:00"
	DefaultTimezone              = "Local" // Use system local timezone by default
)
