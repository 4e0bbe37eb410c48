package utils

import (
	"fmt"
	"time"

	"github.com/mwhitfield/caretrack/internal/constants"
)

// NormalizeMinuteOfDay wraps an arbitrary minute offset into [0, 1440).
// Negative offsets roll back through midnight (e.g. 00:03 minus 5 minutes
// normalizes to 23:58).
func NormalizeMinuteOfDay(minutes int) int {
	m := minutes % constants.MinutesPerDay
	if m < 0 {
		m += constants.MinutesPerDay
	}
	return m
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders a minute-of-day value as an HH:MM string.
func FormatMinutes(minutes int) string {
	m := NormalizeMinuteOfDay(minutes)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// MinuteOfDay returns the minutes elapsed since midnight for the given instant.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// SameDay reports whether two instants fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// HoursSince returns the number of hours elapsed from t to now.
func HoursSince(t, now time.Time) float64 {
	return now.Sub(t).Hours()
}

// DayString returns the local calendar day of t as YYYY-MM-DD.
func DayString(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a YYYY-MM-DD date string at midnight local time.
func ParseDay(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// DaysBetween returns the number of whole calendar days from start to end,
// inclusive of both endpoints. Returns 0 if end precedes start.
func DaysBetween(start, end time.Time) int {
	// Calendar-day arithmetic only: rebuild both endpoints at UTC midnight so
	// mixed locations and DST shifts cannot skew the count.
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}
