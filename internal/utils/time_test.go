package utils

import (
	"testing"
	"time"
)

func TestNormalizeMinuteOfDay(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    int
	}{
		{
			name:    "already in range",
			minutes: 540,
			want:    540,
		},
		{
			name:    "zero",
			minutes: 0,
			want:    0,
		},
		{
			name:    "negative wraps to previous day",
			minutes: -2, // 00:03 minus 5 minutes
			want:    1438,
		},
		{
			name:    "exactly one day wraps to zero",
			minutes: 1440,
			want:    0,
		},
		{
			name:    "past midnight wraps forward",
			minutes: 1500,
			want:    60,
		},
		{
			name:    "large negative",
			minutes: -1441,
			want:    1439,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeMinuteOfDay(tt.minutes); got != tt.want {
				t.Errorf("NormalizeMinuteOfDay(%d) = %d, want %d", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestNormalizeMinuteOfDayRange(t *testing.T) {
	// Every input must land in [0, 1440) regardless of offset.
	for _, minutes := range []int{-10000, -1440, -1, 0, 719, 1439, 1440, 99999} {
		got := NormalizeMinuteOfDay(minutes)
		if got < 0 || got >= 1440 {
			t.Errorf("NormalizeMinuteOfDay(%d) = %d, outside [0, 1440)", minutes, got)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{
			name:    "morning",
			minutes: 9*60 + 5,
			want:    "09:05",
		},
		{
			name:    "midnight",
			minutes: 0,
			want:    "00:00",
		},
		{
			name:    "reminder before midnight rolls back",
			minutes: 3 - 5, // 00:03 with a 5 minute lead
			want:    "23:58",
		},
		{
			name:    "end of day",
			minutes: 1439,
			want:    "23:59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMinutes(tt.minutes); got != tt.want {
				t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		timeStr string
		want    int
		wantErr bool
	}{
		{
			name:    "valid morning time",
			timeStr: "09:00",
			want:    540,
		},
		{
			name:    "midnight",
			timeStr: "00:00",
			want:    0,
		},
		{
			name:    "end of day",
			timeStr: "23:59",
			want:    1439,
		},
		{
			name:    "invalid format",
			timeStr: "9am",
			wantErr: true,
		},
		{
			name:    "out of range hour",
			timeStr: "25:00",
			wantErr: true,
		},
		{
			name:    "empty string",
			timeStr: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeToMinutes(tt.timeStr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTimeToMinutes(%q) error = %v, wantErr %v", tt.timeStr, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tt.timeStr, got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	base := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{
			name: "same day different hours",
			a:    base,
			b:    time.Date(2025, 6, 10, 23, 59, 0, 0, time.Local),
			want: true,
		},
		{
			name: "adjacent days",
			a:    base,
			b:    time.Date(2025, 6, 11, 0, 0, 0, 0, time.Local),
			want: false,
		},
		{
			name: "same day of different months",
			a:    base,
			b:    time.Date(2025, 7, 10, 9, 0, 0, 0, time.Local),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "same day counts as one",
			start: time.Date(2025, 6, 10, 8, 0, 0, 0, time.Local),
			end:   time.Date(2025, 6, 10, 22, 0, 0, 0, time.Local),
			want:  1,
		},
		{
			name:  "one week inclusive",
			start: time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local),
			end:   time.Date(2025, 6, 7, 6, 0, 0, 0, time.Local),
			want:  7,
		},
		{
			name:  "end before start",
			start: time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local),
			end:   time.Date(2025, 6, 9, 0, 0, 0, 0, time.Local),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHoursSince(t *testing.T) {
	then := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 10, 21, 30, 0, 0, time.UTC)

	if got := HoursSince(then, now); got != 12.5 {
		t.Errorf("HoursSince() = %v, want 12.5", got)
	}
}
