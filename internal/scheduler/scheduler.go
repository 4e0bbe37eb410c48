// Package scheduler converts recurring care obligations into concrete
// notification triggers, and handles snooze and mark-done dispositions for
// delivered reminders.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/logger"
	"github.com/mwhitfield/caretrack/internal/models"
	"github.com/mwhitfield/caretrack/internal/notifier"
	"github.com/mwhitfield/caretrack/internal/utils"
)

// LogWriter is the single domain write the scheduler performs: recording a
// medication as taken from a mark-done quick action.
type LogWriter interface {
	AddLog(models.DailyLog) error
}

type Scheduler struct {
	notifier notifier.Notifier
	logs     LogWriter

	// Guards the full cancel-then-recreate sequence so two concurrent
	// reschedules cannot interleave.
	mu sync.Mutex
}

func New(n notifier.Notifier, logs LogWriter) *Scheduler {
	return &Scheduler{notifier: n, logs: logs}
}

// RescheduleAll rebuilds the complete recurring trigger set from the current
// obligations and settings. It always starts from a full cancel rather than
// diffing, which trades a brief empty-registry window for guaranteed
// consistency: deleted obligations can never leave orphaned triggers behind.
//
// Without notification permission the call is a silent no-op; reminders are
// a convenience, not critical-path. A single malformed obligation is logged
// and skipped, never aborting the batch.
func (s *Scheduler) RescheduleAll(obligations []models.Obligation, settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.notifier.HasPermission() {
		logger.Debug("Notification permission absent, skipping reschedule")
		return nil
	}

	if !settings.Enabled {
		if err := s.notifier.CancelAll(); err != nil {
			return fmt.Errorf("failed to cancel triggers: %w", err)
		}
		return nil
	}

	if err := s.notifier.CancelAll(); err != nil {
		return fmt.Errorf("failed to cancel triggers: %w", err)
	}

	for _, obligation := range obligations {
		if !obligation.Active {
			continue
		}
		if err := s.scheduleObligation(obligation, settings); err != nil {
			logger.Warn("Failed to schedule obligation", "obligation", obligation.Name, "error", err)
		}
	}

	return nil
}

func (s *Scheduler) scheduleObligation(obligation models.Obligation, settings models.Settings) error {
	timeOfDay, err := obligation.TimeOfDayMinutes()
	if err != nil {
		return err
	}

	// Primary reminder, led by the configured minutes-before offset. The
	// subtraction may cross midnight; normalization rolls it into the
	// previous day's hour, which is all a calendar-recurring trigger needs.
	primary := utils.NormalizeMinuteOfDay(timeOfDay - settings.ReminderMinutesBefore)

	payload := models.Notification{
		Title:        fmt.Sprintf("Time for %s", obligation.Name),
		Body:         reminderBody(obligation),
		Kind:         constants.KindReminder,
		ObligationID: obligation.ID,
		Name:         obligation.Name,
		Dosage:       obligation.Dosage,
	}
	if _, err := s.notifier.ScheduleRecurring(primary/60, primary%60, payload); err != nil {
		return fmt.Errorf("failed to register reminder trigger: %w", err)
	}

	if !settings.OverdueAlertsEnabled {
		return nil
	}

	overdue := utils.NormalizeMinuteOfDay(timeOfDay + settings.GracePeriodMinutes + settings.OverdueAlertMinutes)
	overduePayload := models.Notification{
		Title:        fmt.Sprintf("Overdue: %s", obligation.Name),
		Body:         fmt.Sprintf("%s was scheduled for %s", obligation.Name, obligation.Time),
		Kind:         constants.KindOverdue,
		ObligationID: obligation.ID,
		Name:         obligation.Name,
		Dosage:       obligation.Dosage,
		Priority:     1,
	}
	if _, err := s.notifier.ScheduleRecurring(overdue/60, overdue%60, overduePayload); err != nil {
		return fmt.Errorf("failed to register overdue trigger: %w", err)
	}

	return nil
}

func reminderBody(obligation models.Obligation) string {
	if obligation.Dosage != "" {
		return fmt.Sprintf("%s (%s)", obligation.Name, obligation.Dosage)
	}
	return obligation.Name
}

// ScheduleOneTime registers a single non-recurring reminder, e.g. for an
// appointment. Without permission or with notifications disabled it returns
// an empty handle and no error. Quiet hours are not consulted here:
// suppression is a delivery-time concern.
func (s *Scheduler) ScheduleOneTime(payload models.Notification, at time.Time, settings models.Settings) (string, error) {
	if !s.notifier.HasPermission() || !settings.Enabled {
		return "", nil
	}
	return s.notifier.ScheduleOnce(at, payload)
}

// Snooze reschedules a delivered notification as a one-time trigger a fixed
// interval from now, carrying the original payload unchanged. Medication
// reminders snooze for 15 minutes, appointment reminders for 30.
func (s *Scheduler) Snooze(payload models.Notification, now time.Time) (string, error) {
	minutes := constants.MedicationSnoozeMin
	if payload.Kind == constants.KindAppointment {
		minutes = constants.AppointmentSnoozeMin
	}
	return s.notifier.ScheduleOnce(now.Add(time.Duration(minutes)*time.Minute), payload)
}

// MarkDone records the underlying medication as taken and emits an immediate
// confirmation trigger, so a quick action handled in the background still
// produces visible feedback.
func (s *Scheduler) MarkDone(payload models.Notification, now time.Time) error {
	if payload.ObligationID != "" {
		log := models.DailyLog{
			ID:           uuid.NewString(),
			Category:     constants.CategoryMedication,
			Timestamp:    now,
			Day:          utils.DayString(now),
			ObligationID: payload.ObligationID,
			Value:        payload.Name,
		}
		if err := s.logs.AddLog(log); err != nil {
			return fmt.Errorf("failed to record medication taken: %w", err)
		}
	}

	confirmation := models.Notification{
		Title: fmt.Sprintf("%s recorded", payload.Name),
		Body:  "Marked as done",
		Kind:  constants.KindConfirmation,
	}
	if _, err := s.notifier.ScheduleOnce(now, confirmation); err != nil {
		return fmt.Errorf("failed to register confirmation: %w", err)
	}

	return nil
}

// IsInQuietHours reports whether now falls inside the configured quiet-hours
// window. The window is [start, end) in minutes since midnight; a start later
// than the end denotes an overnight window that wraps past midnight.
func IsInQuietHours(settings models.Settings, now time.Time) bool {
	if !settings.QuietHoursEnabled {
		return false
	}

	start, err := utils.ParseTimeToMinutes(settings.QuietHoursStart)
	if err != nil {
		logger.Warn("Invalid quiet hours start", "value", settings.QuietHoursStart, "error", err)
		return false
	}
	end, err := utils.ParseTimeToMinutes(settings.QuietHoursEnd)
	if err != nil {
		logger.Warn("Invalid quiet hours end", "value", settings.QuietHoursEnd, "error", err)
		return false
	}

	minute := utils.MinuteOfDay(now)
	if start <= end {
		return minute >= start && minute < end
	}
	// Overnight window, e.g. 22:00-07:00.
	return minute >= start || minute < end
}
