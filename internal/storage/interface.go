package storage

import (
	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/models"
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Obligations
	AddObligation(models.Obligation) error
	GetObligation(id string) (models.Obligation, error)
	GetAllObligations() ([]models.Obligation, error)
	UpdateObligation(models.Obligation) error
	DeleteObligation(id string) error

	// Daily logs (append-only)
	AddLog(models.DailyLog) error
	// GetLogs returns all logs of a category whose derived day falls within
	// [startDay, endDay], both inclusive, in forward timestamp order.
	GetLogs(category constants.LogCategory, startDay, endDay string) ([]models.DailyLog, error)
	GetLogsForDay(category constants.LogCategory, day string) ([]models.DailyLog, error)
	// FirstLogDay returns the earliest derived day with a log in the
	// category, or the empty string if the category has no logs.
	FirstLogDay(category constants.LogCategory) (string, error)

	// Baseline override state
	GetBaselineState(category constants.LogCategory) (models.BaselineState, error)
	SaveBaselineState(models.BaselineState) error

	// One-time flags
	GetFlag(key string) (bool, error)
	SetFlag(key string, value bool) error

	// Suggestion dismissals
	IsSuggestionDismissed(id string) (bool, error)
	DismissSuggestion(id string) error

	// Notification triggers
	AddTrigger(models.Trigger) error
	GetTriggers() ([]models.Trigger, error)
	DeleteTrigger(handle string) error
	DeleteTriggersByOwner(owner constants.TriggerOwner) error

	// Deliveries (fired notifications awaiting disposition)
	AddDelivery(models.Delivery) error
	GetDelivery(id string) (models.Delivery, error)
	UpdateDelivery(models.Delivery) error

	// Utils
	GetConfigPath() string
}
