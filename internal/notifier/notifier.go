// Package notifier is the device-notifier boundary: a trigger registry the
// scheduler writes into, and a delivery loop that surfaces due triggers as
// desktop notifications.
package notifier

import (
	"time"

	"github.com/google/uuid"

	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/models"
)

// Notifier is the scheduling surface the reminder scheduler talks to.
// Handles are opaque; CancelAll removes only the scheduler's own recurring
// triggers, leaving pending one-time triggers (snoozes, confirmations)
// untouched.
type Notifier interface {
	ScheduleRecurring(hour, minute int, payload models.Notification) (string, error)
	ScheduleOnce(at time.Time, payload models.Notification) (string, error)
	Cancel(handle string) error
	CancelAll() error
	HasPermission() bool
	RequestPermission() bool
}

// TriggerStore is the slice of the storage provider the notifier needs. The
// log lookup lets the delivery loop check completion state before surfacing
// an overdue alert.
type TriggerStore interface {
	AddTrigger(models.Trigger) error
	GetTriggers() ([]models.Trigger, error)
	DeleteTrigger(handle string) error
	DeleteTriggersByOwner(owner constants.TriggerOwner) error
	AddDelivery(models.Delivery) error
	GetLogsForDay(category constants.LogCategory, day string) ([]models.DailyLog, error)
	GetFlag(key string) (bool, error)
	SetFlag(key string, value bool) error
}

// Desktop is a Notifier backed by the local trigger registry. Registration is
// durable; actual delivery happens when the cron-run notify command scans the
// registry for due triggers.
type Desktop struct {
	store TriggerStore
}

func NewDesktop(store TriggerStore) *Desktop {
	return &Desktop{store: store}
}

func (d *Desktop) ScheduleRecurring(hour, minute int, payload models.Notification) (string, error) {
	trigger := models.Trigger{
		Handle:    uuid.NewString(),
		Owner:     constants.OwnerScheduler,
		Recurring: true,
		Hour:      hour,
		Minute:    minute,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	if err := d.store.AddTrigger(trigger); err != nil {
		return "", err
	}
	return trigger.Handle, nil
}

func (d *Desktop) ScheduleOnce(at time.Time, payload models.Notification) (string, error) {
	trigger := models.Trigger{
		Handle:    uuid.NewString(),
		Owner:     constants.OwnerOneTime,
		Recurring: false,
		FireAt:    at,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	if err := d.store.AddTrigger(trigger); err != nil {
		return "", err
	}
	return trigger.Handle, nil
}

func (d *Desktop) Cancel(handle string) error {
	return d.store.DeleteTrigger(handle)
}

func (d *Desktop) CancelAll() error {
	return d.store.DeleteTriggersByOwner(constants.OwnerScheduler)
}

// HasPermission reports whether the user has granted notification delivery.
// Absence of permission is a normal state, not an error: scheduling quietly
// no-ops until `caretrack notify enable` is run.
func (d *Desktop) HasPermission() bool {
	granted, err := d.store.GetFlag(constants.FlagPermissionGranted)
	if err != nil {
		return false
	}
	return granted
}

func (d *Desktop) RequestPermission() bool {
	if err := d.store.SetFlag(constants.FlagPermissionGranted, true); err != nil {
		return false
	}
	return true
}

// RevokePermission withdraws delivery permission.
func (d *Desktop) RevokePermission() bool {
	if err := d.store.SetFlag(constants.FlagPermissionGranted, false); err != nil {
		return false
	}
	return true
}
