package notifier

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/google/uuid"

	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/logger"
	"github.com/mwhitfield/caretrack/internal/models"
	"github.com/mwhitfield/caretrack/internal/utils"
)

var sendFunc = func(payload models.Notification, sound bool) error {
	if payload.Priority > 0 && sound {
		return beeep.Alert(payload.Title, payload.Body, "")
	}
	return beeep.Notify(payload.Title, payload.Body, "")
}

// DeliverDue scans the trigger registry and delivers every trigger due at
// now: recurring triggers whose hour/minute match the current minute, and
// one-time triggers whose instant has passed. Fired one-time triggers are
// removed; recurring triggers stay registered for the next day. Each
// delivery is recorded so snooze / mark-done quick actions can resolve it
// later. A single failed delivery never aborts the scan.
func (d *Desktop) DeliverDue(now time.Time, sound bool) ([]models.Delivery, error) {
	triggers, err := d.store.GetTriggers()
	if err != nil {
		return nil, fmt.Errorf("failed to read triggers: %w", err)
	}

	var deliveries []models.Delivery
	for _, trigger := range triggers {
		if !triggerDue(trigger, now) {
			continue
		}

		// An overdue alert only fires while the dose is still outstanding.
		if trigger.Payload.Kind == constants.KindOverdue && d.doseLoggedToday(trigger.Payload.ObligationID, now) {
			continue
		}

		if err := sendFunc(trigger.Payload, sound); err != nil {
			logger.Warn("Notification delivery failed", "handle", trigger.Handle, "error", err)
			continue
		}

		delivery := models.Delivery{
			ID:          uuid.NewString(),
			Payload:     trigger.Payload,
			DeliveredAt: now,
		}
		if err := d.store.AddDelivery(delivery); err != nil {
			logger.Warn("Failed to record delivery", "handle", trigger.Handle, "error", err)
		} else {
			deliveries = append(deliveries, delivery)
		}

		if !trigger.Recurring {
			if err := d.store.DeleteTrigger(trigger.Handle); err != nil {
				logger.Warn("Failed to remove fired one-time trigger", "handle", trigger.Handle, "error", err)
			}
		}
	}

	return deliveries, nil
}

// doseLoggedToday reports whether the obligation already has a medication
// log for now's calendar day. A failed lookup counts as not logged.
func (d *Desktop) doseLoggedToday(obligationID string, now time.Time) bool {
	if obligationID == "" {
		return false
	}
	logs, err := d.store.GetLogsForDay(constants.CategoryMedication, utils.DayString(now))
	if err != nil {
		logger.Warn("Failed to check completion state for overdue alert", "obligation", obligationID, "error", err)
		return false
	}
	for _, log := range logs {
		if log.ObligationID == obligationID {
			return true
		}
	}
	return false
}

func triggerDue(trigger models.Trigger, now time.Time) bool {
	if trigger.Recurring {
		return trigger.Hour == now.Hour() && trigger.Minute == now.Minute()
	}
	return !trigger.FireAt.After(now)
}
