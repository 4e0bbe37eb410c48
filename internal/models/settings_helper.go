package models

import (
	"fmt"

	"github.com/mwhitfield/caretrack/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingEnabled:
			settings.Enabled = value == "true"
		case constants.SettingReminderMinutesBefore:
			if _, err := fmt.Sscanf(value, "%d", &settings.ReminderMinutesBefore); err != nil {
				return Settings{}, fmt.Errorf("parsing reminder_minutes_before: %w", err)
			}
		case constants.SettingSoundEnabled:
			settings.SoundEnabled = value == "true"
		case constants.SettingVibrationEnabled:
			settings.VibrationEnabled = value == "true"
		case constants.SettingOverdueAlertsEnabled:
			settings.OverdueAlertsEnabled = value == "true"
		case constants.SettingGracePeriodMinutes:
			if _, err := fmt.Sscanf(value, "%d", &settings.GracePeriodMinutes); err != nil {
				return Settings{}, fmt.Errorf("parsing grace_period_minutes: %w", err)
			}
		case constants.SettingOverdueAlertMinutes:
			if _, err := fmt.Sscanf(value, "%d", &settings.OverdueAlertMinutes); err != nil {
				return Settings{}, fmt.Errorf("parsing overdue_alert_minutes: %w", err)
			}
		case constants.SettingQuietHoursEnabled:
			settings.QuietHoursEnabled = value == "true"
		case constants.SettingQuietHoursStart:
			settings.QuietHoursStart = value
		case constants.SettingQuietHoursEnd:
			settings.QuietHoursEnd = value
		case constants.SettingTimezone:
			settings.Timezone = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingEnabled:               fmt.Sprintf("%v", settings.Enabled),
		constants.SettingReminderMinutesBefore: fmt.Sprintf("%d", settings.ReminderMinutesBefore),
		constants.SettingSoundEnabled:          fmt.Sprintf("%v", settings.SoundEnabled),
		constants.SettingVibrationEnabled:      fmt.Sprintf("%v", settings.VibrationEnabled),
		constants.SettingOverdueAlertsEnabled:  fmt.Sprintf("%v", settings.OverdueAlertsEnabled),
		constants.SettingGracePeriodMinutes:    fmt.Sprintf("%d", settings.GracePeriodMinutes),
		constants.SettingOverdueAlertMinutes:   fmt.Sprintf("%d", settings.OverdueAlertMinutes),
		constants.SettingQuietHoursEnabled:     fmt.Sprintf("%v", settings.QuietHoursEnabled),
		constants.SettingQuietHoursStart:       settings.QuietHoursStart,
		constants.SettingQuietHoursEnd:         settings.QuietHoursEnd,
		constants.SettingTimezone:              settings.Timezone,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.QuietHoursStart == "" {
		settings.QuietHoursStart = constants.DefaultQuietHoursStart
	}
	if settings.QuietHoursEnd == "" {
		settings.QuietHoursEnd = constants.DefaultQuietHoursEnd
	}
	if settings.GracePeriodMinutes == 0 {
		settings.GracePeriodMinutes = constants.DefaultGracePeriodMinutes
	}
	if settings.OverdueAlertMinutes == 0 {
		settings.OverdueAlertMinutes = constants.DefaultOverdueAlertMinutes
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
}

// DefaultSettings returns the settings profile written on first init.
func DefaultSettings() Settings {
	return Settings{
		Enabled:               constants.DefaultEnabled,
		ReminderMinutesBefore: constants.DefaultReminderMinutesBefore,
		SoundEnabled:          constants.DefaultSoundEnabled,
		VibrationEnabled:      constants.DefaultVibrationEnabled,
		OverdueAlertsEnabled:  constants.DefaultOverdueAlertsEnabled,
		GracePeriodMinutes:    constants.DefaultGracePeriodMinutes,
		OverdueAlertMinutes:   constants.DefaultOverdueAlertMinutes,
		QuietHoursEnabled:     constants.DefaultQuietHoursEnabled,
		QuietHoursStart:       constants.DefaultQuietHoursStart,
		QuietHoursEnd:         constants.DefaultQuietHoursEnd,
		Timezone:              constants.DefaultTimezone,
	}
}
