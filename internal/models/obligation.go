package models

import (
	"fmt"
	"time"

	"github.com/mwhitfield/caretrack/internal/constants"
)

// Obligation is a recurring care obligation, e.g. one scheduled medication
// dose. Obligations are created and edited through the CRUD commands and are
// read-only to the reminder scheduler.
type Obligation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage,omitempty"`
	Time      string    `json:"time"` // HH:MM format
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func (o *Obligation) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("obligation name cannot be empty")
	}

	if o.Time == "" {
		return fmt.Errorf("obligation time cannot be empty")
	}

	// Validate time format (HH:MM)
	if _, err := time.Parse(constants.TimeFormat, o.Time); err != nil {
		return fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}

	return nil
}

// TimeOfDayMinutes returns the scheduled time as minutes from midnight.
func (o *Obligation) TimeOfDayMinutes() (int, error) {
	t, err := time.Parse(constants.TimeFormat, o.Time)
	if err != nil {
		return 0, fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
