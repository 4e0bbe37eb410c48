package scheduler

import (
	"testing"
	"time"

	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/models"
)

// fakeNotifier records schedule and cancel calls.
type fakeNotifier struct {
	permission bool
	recurring  []recurringCall
	onetime    []onetimeCall
	cancelAlls int
	nextHandle int
}

type recurringCall struct {
	hour, minute int
	payload      models.Notification
}

type onetimeCall struct {
	at      time.Time
	payload models.Notification
}

func (f *fakeNotifier) ScheduleRecurring(hour, minute int, payload models.Notification) (string, error) {
	f.recurring = append(f.recurring, recurringCall{hour, minute, payload})
	f.nextHandle++
	return "h" + string(rune('0'+f.nextHandle)), nil
}

func (f *fakeNotifier) ScheduleOnce(at time.Time, payload models.Notification) (string, error) {
	f.onetime = append(f.onetime, onetimeCall{at, payload})
	f.nextHandle++
	return "h" + string(rune('0'+f.nextHandle)), nil
}

func (f *fakeNotifier) Cancel(handle string) error { return nil }

func (f *fakeNotifier) CancelAll() error {
	f.cancelAlls++
	f.recurring = nil
	return nil
}

func (f *fakeNotifier) HasPermission() bool     { return f.permission }
func (f *fakeNotifier) RequestPermission() bool { f.permission = true; return true }

// fakeLogWriter records medication logs.
type fakeLogWriter struct {
	logs []models.DailyLog
}

func (f *fakeLogWriter) AddLog(log models.DailyLog) error {
	f.logs = append(f.logs, log)
	return nil
}

func enabledSettings() models.Settings {
	settings := models.DefaultSettings()
	settings.Enabled = true
	settings.OverdueAlertsEnabled = true
	settings.GracePeriodMinutes = 30
	settings.OverdueAlertMinutes = 30
	return settings
}

func TestRescheduleAllTriggerTimes(t *testing.T) {
	tests := []struct {
		name                  string
		obligationTime        string
		reminderMinutesBefore int
		wantHour              int
		wantMinute            int
	}{
		{
			name:           "no lead time",
			obligationTime: "09:00",
			wantHour:       9,
			wantMinute:     0,
		},
		{
			name:                  "simple lead time",
			obligationTime:        "09:00",
			reminderMinutesBefore: 15,
			wantHour:              8,
			wantMinute:            45,
		},
		{
			name:                  "lead time rolls back past midnight",
			obligationTime:        "00:03",
			reminderMinutesBefore: 5,
			wantHour:              23,
			wantMinute:            58,
		},
		{
			name:                  "negative-adjusted lead time pushes later",
			obligationTime:        "23:50",
			reminderMinutesBefore: -20,
			wantHour:              0,
			wantMinute:            10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &fakeNotifier{permission: true}
			s := New(n, &fakeLogWriter{})

			settings := enabledSettings()
			settings.ReminderMinutesBefore = tt.reminderMinutesBefore
			settings.OverdueAlertsEnabled = false

			obligations := []models.Obligation{
				{ID: "ob-1", Name: "Lisinopril", Time: tt.obligationTime, Active: true},
			}

			if err := s.RescheduleAll(obligations, settings); err != nil {
				t.Fatalf("RescheduleAll() failed: %v", err)
			}

			if len(n.recurring) != 1 {
				t.Fatalf("registered %d triggers, want 1", len(n.recurring))
			}
			got := n.recurring[0]
			if got.hour != tt.wantHour || got.minute != tt.wantMinute {
				t.Errorf("trigger at %02d:%02d, want %02d:%02d", got.hour, got.minute, tt.wantHour, tt.wantMinute)
			}
			if got.hour < 0 || got.hour > 23 || got.minute < 0 || got.minute > 59 {
				t.Errorf("trigger %02d:%02d outside valid hour/minute range", got.hour, got.minute)
			}
		})
	}
}

func TestRescheduleAllOverdueTrigger(t *testing.T) {
	n := &fakeNotifier{permission: true}
	s := New(n, &fakeLogWriter{})

	settings := enabledSettings()
	settings.GracePeriodMinutes = 30
	settings.OverdueAlertMinutes = 45

	obligations := []models.Obligation{
		{ID: "ob-1", Name: "Lisinopril", Dosage: "10mg", Time: "09:00", Active: true},
	}

	if err := s.RescheduleAll(obligations, settings); err != nil {
		t.Fatalf("RescheduleAll() failed: %v", err)
	}

	if len(n.recurring) != 2 {
		t.Fatalf("registered %d triggers, want 2 (primary + overdue)", len(n.recurring))
	}

	overdue := n.recurring[1]
	// 09:00 + 30 grace + 45 overdue = 10:15
	if overdue.hour != 10 || overdue.minute != 15 {
		t.Errorf("overdue trigger at %02d:%02d, want 10:15", overdue.hour, overdue.minute)
	}
	if overdue.payload.Kind != constants.KindOverdue {
		t.Errorf("overdue payload kind = %q, want %q", overdue.payload.Kind, constants.KindOverdue)
	}
	if overdue.payload.Priority <= n.recurring[0].payload.Priority {
		t.Error("overdue trigger should carry elevated priority")
	}
}

func TestRescheduleAllOverdueRollsPastMidnight(t *testing.T) {
	n := &fakeNotifier{permission: true}
	s := New(n, &fakeLogWriter{})

	settings := enabledSettings()
	settings.GracePeriodMinutes = 60
	settings.OverdueAlertMinutes = 60

	obligations := []models.Obligation{
		{ID: "ob-1", Name: "Melatonin", Time: "23:30", Active: true},
	}

	if err := s.RescheduleAll(obligations, settings); err != nil {
		t.Fatalf("RescheduleAll() failed: %v", err)
	}

	overdue := n.recurring[1]
	// 23:30 + 120 min wraps to 01:30
	if overdue.hour != 1 || overdue.minute != 30 {
		t.Errorf("overdue trigger at %02d:%02d, want 01:30", overdue.hour, overdue.minute)
	}
}

func TestRescheduleAllIdempotent(t *testing.T) {
	n := &fakeNotifier{permission: true}
	s := New(n, &fakeLogWriter{})

	settings := enabledSettings()
	obligations := []models.Obligation{
		{ID: "ob-1", Name: "Lisinopril", Time: "09:00", Active: true},
		{ID: "ob-2", Name: "Metformin", Time: "18:00", Active: true},
	}

	if err := s.RescheduleAll(obligations, settings); err != nil {
		t.Fatalf("first RescheduleAll() failed: %v", err)
	}
	first := append([]recurringCall(nil), n.recurring...)

	if err := s.RescheduleAll(obligations, settings); err != nil {
		t.Fatalf("second RescheduleAll() failed: %v", err)
	}

	if len(n.recurring) != len(first) {
		t.Fatalf("second pass registered %d triggers, want %d", len(n.recurring), len(first))
	}
	for i := range first {
		if n.recurring[i].hour != first[i].hour || n.recurring[i].minute != first[i].minute ||
			n.recurring[i].payload != first[i].payload {
			t.Errorf("trigger %d differs between passes: %+v vs %+v", i, n.recurring[i], first[i])
		}
	}
	if n.cancelAlls != 2 {
		t.Errorf("cancelAll called %d times, want 2 (full rebuild each pass)", n.cancelAlls)
	}
}

func TestRescheduleAllSkipsInactiveAndMalformed(t *testing.T) {
	n := &fakeNotifier{permission: true}
	s := New(n, &fakeLogWriter{})

	settings := enabledSettings()
	settings.OverdueAlertsEnabled = false

	obligations := []models.Obligation{
		{ID: "ob-1", Name: "Lisinopril", Time: "09:00", Active: true},
		{ID: "ob-2", Name: "Inactive", Time: "10:00", Active: false},
		{ID: "ob-3", Name: "Broken", Time: "not-a-time", Active: true},
		{ID: "ob-4", Name: "Metformin", Time: "18:00", Active: true},
	}

	// A malformed obligation must not abort the batch.
	if err := s.RescheduleAll(obligations, settings); err != nil {
		t.Fatalf("RescheduleAll() failed: %v", err)
	}

	if len(n.recurring) != 2 {
		t.Fatalf("registered %d triggers, want 2", len(n.recurring))
	}
	if n.recurring[0].payload.Name != "Lisinopril" || n.recurring[1].payload.Name != "Metformin" {
		t.Errorf("unexpected scheduled obligations: %+v", n.recurring)
	}
}

func TestRescheduleAllWithoutPermission(t *testing.T) {
	n := &fakeNotifier{permission: false}
	s := New(n, &fakeLogWriter{})

	obligations := []models.Obligation{
		{ID: "ob-1", Name: "Lisinopril", Time: "09:00", Active: true},
	}

	// Permission absence is a normal state: silent no-op, no error.
	if err := s.RescheduleAll(obligations, enabledSettings()); err != nil {
		t.Fatalf("RescheduleAll() failed: %v", err)
	}
	if len(n.recurring) != 0 {
		t.Errorf("registered %d triggers without permission, want 0", len(n.recurring))
	}
	if n.cancelAlls != 0 {
		t.Errorf("cancelAll called %d times without permission, want 0", n.cancelAlls)
	}
}

func TestRescheduleAllDisabledCancelsEverything(t *testing.T) {
	n := &fakeNotifier{permission: true}
	s := New(n, &fakeLogWriter{})

	settings := enabledSettings()
	obligations := []models.Obligation{
		{ID: "ob-1", Name: "Lisinopril", Time: "09:00", Active: true},
	}
	if err := s.RescheduleAll(obligations, settings); err != nil {
		t.Fatalf("RescheduleAll() failed: %v", err)
	}

	settings.Enabled = false
	if err := s.RescheduleAll(obligations, settings); err != nil {
		t.Fatalf("RescheduleAll() with disabled settings failed: %v", err)
	}

	if len(n.recurring) != 0 {
		t.Errorf("%d triggers remain after disable, want 0", len(n.recurring))
	}
}

func TestScheduleOneTime(t *testing.T) {
	at := time.Date(2025, 6, 12, 14, 0, 0, 0, time.Local)
	payload := models.Notification{Title: "Cardiology appointment", Kind: constants.KindAppointment}

	t.Run("registers with permission and enabled", func(t *testing.T) {
		n := &fakeNotifier{permission: true}
		s := New(n, &fakeLogWriter{})

		handle, err := s.ScheduleOneTime(payload, at, enabledSettings())
		if err != nil {
			t.Fatalf("ScheduleOneTime() failed: %v", err)
		}
		if handle == "" {
			t.Error("expected a handle")
		}
		if len(n.onetime) != 1 || !n.onetime[0].at.Equal(at) {
			t.Errorf("unexpected one-time registrations: %+v", n.onetime)
		}
	})

	t.Run("null handle without permission", func(t *testing.T) {
		n := &fakeNotifier{permission: false}
		s := New(n, &fakeLogWriter{})

		handle, err := s.ScheduleOneTime(payload, at, enabledSettings())
		if err != nil {
			t.Fatalf("ScheduleOneTime() failed: %v", err)
		}
		if handle != "" {
			t.Errorf("handle = %q, want empty", handle)
		}
	})

	t.Run("null handle when disabled", func(t *testing.T) {
		n := &fakeNotifier{permission: true}
		s := New(n, &fakeLogWriter{})

		settings := enabledSettings()
		settings.Enabled = false

		handle, err := s.ScheduleOneTime(payload, at, settings)
		if err != nil {
			t.Fatalf("ScheduleOneTime() failed: %v", err)
		}
		if handle != "" {
			t.Errorf("handle = %q, want empty", handle)
		}
	})
}

func TestSnoozeIntervals(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 5, 0, 0, time.Local)

	tests := []struct {
		name    string
		kind    constants.NotificationKind
		wantMin int
	}{
		{
			name:    "medication snoozes 15 minutes",
			kind:    constants.KindReminder,
			wantMin: 15,
		},
		{
			name:    "appointment snoozes 30 minutes",
			kind:    constants.KindAppointment,
			wantMin: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &fakeNotifier{permission: true}
			s := New(n, &fakeLogWriter{})

			payload := models.Notification{
				Title: "Time for Lisinopril", Kind: tt.kind,
				ObligationID: "ob-1", Name: "Lisinopril",
			}

			if _, err := s.Snooze(payload, now); err != nil {
				t.Fatalf("Snooze() failed: %v", err)
			}

			if len(n.onetime) != 1 {
				t.Fatalf("registered %d one-time triggers, want 1", len(n.onetime))
			}
			want := now.Add(time.Duration(tt.wantMin) * time.Minute)
			if !n.onetime[0].at.Equal(want) {
				t.Errorf("snooze fires at %v, want %v", n.onetime[0].at, want)
			}
			// Original payload is carried unchanged.
			if n.onetime[0].payload != payload {
				t.Errorf("snoozed payload = %+v, want original %+v", n.onetime[0].payload, payload)
			}
		})
	}
}

func TestMarkDone(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 5, 0, 0, time.Local)
	n := &fakeNotifier{permission: true}
	logs := &fakeLogWriter{}
	s := New(n, logs)

	payload := models.Notification{
		Title: "Time for Lisinopril", Kind: constants.KindReminder,
		ObligationID: "ob-1", Name: "Lisinopril", Dosage: "10mg",
	}

	if err := s.MarkDone(payload, now); err != nil {
		t.Fatalf("MarkDone() failed: %v", err)
	}

	if len(logs.logs) != 1 {
		t.Fatalf("recorded %d logs, want 1", len(logs.logs))
	}
	log := logs.logs[0]
	if log.Category != constants.CategoryMedication || log.ObligationID != "ob-1" {
		t.Errorf("unexpected medication log: %+v", log)
	}
	if log.Day != "2025-06-10" {
		t.Errorf("log day = %q, want 2025-06-10", log.Day)
	}

	// Confirmation fires immediately.
	if len(n.onetime) != 1 {
		t.Fatalf("registered %d one-time triggers, want 1", len(n.onetime))
	}
	if !n.onetime[0].at.Equal(now) {
		t.Errorf("confirmation fires at %v, want %v", n.onetime[0].at, now)
	}
	if n.onetime[0].payload.Kind != constants.KindConfirmation {
		t.Errorf("confirmation kind = %q, want %q", n.onetime[0].payload.Kind, constants.KindConfirmation)
	}
}

func TestIsInQuietHours(t *testing.T) {
	at := func(hhmm string) time.Time {
		parsed, err := time.Parse("15:04", hhmm)
		if err != nil {
			t.Fatalf("bad test time %q: %v", hhmm, err)
		}
		return time.Date(2025, 6, 10, parsed.Hour(), parsed.Minute(), 0, 0, time.Local)
	}

	tests := []struct {
		name  string
		start string
		end   string
		now   string
		want  bool
	}{
		{
			name:  "overnight window late evening",
			start: "22:00", end: "07:00", now: "23:30",
			want: true,
		},
		{
			name:  "overnight window early morning",
			start: "22:00", end: "07:00", now: "06:59",
			want: true,
		},
		{
			name:  "overnight window at exclusive end",
			start: "22:00", end: "07:00", now: "07:00",
			want: false,
		},
		{
			name:  "overnight window midday",
			start: "22:00", end: "07:00", now: "12:00",
			want: false,
		},
		{
			name:  "same-day window inside",
			start: "08:00", end: "09:00", now: "08:30",
			want: true,
		},
		{
			name:  "same-day window at exclusive end",
			start: "08:00", end: "09:00", now: "09:00",
			want: false,
		},
		{
			name:  "same-day window at inclusive start",
			start: "08:00", end: "09:00", now: "08:00",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := models.Settings{
				QuietHoursEnabled: true,
				QuietHoursStart:   tt.start,
				QuietHoursEnd:     tt.end,
			}
			if got := IsInQuietHours(settings, at(tt.now)); got != tt.want {
				t.Errorf("IsInQuietHours(%s-%s at %s) = %v, want %v", tt.start, tt.end, tt.now, got, tt.want)
			}
		})
	}
}

func TestIsInQuietHoursDisabled(t *testing.T) {
	settings := models.Settings{
		QuietHoursEnabled: false,
		QuietHoursStart:   "22:00",
		QuietHoursEnd:     "07:00",
	}
	now := time.Date(2025, 6, 10, 23, 30, 0, 0, time.Local)
	if IsInQuietHours(settings, now) {
		t.Error("IsInQuietHours() = true with quiet hours disabled, want false")
	}
}
