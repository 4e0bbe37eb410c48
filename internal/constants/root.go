package constants

// LogCategory identifies one of the tracked daily-log categories.
type LogCategory string

// NotificationKind tags the payload carried by a scheduled trigger.
type NotificationKind string

// TriggerOwner identifies which component registered a trigger.
type TriggerOwner string

const (
	AppName           = "caretrack"
	DefaultConfigPath = "~/.config/caretrack/caretrack.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// MinutesPerDay is the number of minutes in a calendar day.
	MinutesPerDay = 24 * 60

	// Log categories
	CategoryMedication LogCategory = "medication"
	CategoryVitals     LogCategory = "vitals"
	CategoryMeal       LogCategory = "meal"
	CategoryMood       LogCategory = "mood"
	CategorySleep      LogCategory = "sleep"
	CategorySymptom    LogCategory = "symptom"

	// Notification kinds
	KindReminder     NotificationKind = "reminder"
	KindOverdue      NotificationKind = "overdue"
	KindAppointment  NotificationKind = "appointment"
	KindConfirmation NotificationKind = "confirmation"

	// Trigger owners. Recurring reminder triggers belong to the scheduler and
	// are wiped wholesale on every rebuild; one-time triggers (snoozes,
	// appointment reminders, confirmations) survive a rebuild.
	OwnerScheduler TriggerOwner = "scheduler"
	OwnerOneTime   TriggerOwner = "onetime"

	// Snooze intervals (minutes)
	MedicationSnoozeMin  = 15
	AppointmentSnoozeMin = 30

	// Baseline window bounds (days)
	BaselineLookbackDays  = 7
	BaselineMinDays       = 3
	BaselineConfidentDays = 5

	// Insight list caps
	MaxStandOutInsights     = 3
	MaxPositiveObservations = 3
	CorrelationSlots        = 2

	// Insight sufficiency gate (days of data)
	InsightMinDays = 5

	// One-time flag keys
	FlagSampleDataShown     = "sample_data_shown"
	FlagSampleDataDismissed = "sample_data_dismissed"
	FlagPermissionGranted   = "notification_permission_granted"
)

// TrackedCategories are the categories the baseline engine computes baselines for.
var TrackedCategories = []LogCategory{CategoryMeal, CategoryVitals, CategoryMedication}

// AllCategories lists every daily-log category.
var AllCategories = []LogCategory{
	CategoryMedication, CategoryVitals, CategoryMeal,
	CategoryMood, CategorySleep, CategorySymptom,
}
