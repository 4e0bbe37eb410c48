package logs

import (
	"fmt"
	"time"

	"github.com/mwhitfield/caretrack/internal/cli"
	"github.com/mwhitfield/caretrack/internal/constants"
)

type LogVitalsCmd struct {
	Systolic  *int     `short:"s" help:"Systolic blood pressure (mmHg)."`
	Diastolic *int     `short:"d" help:"Diastolic blood pressure (mmHg)."`
	HeartRate *int     `short:"r" help:"Heart rate (bpm)."`
	Weight    *float64 `short:"w" help:"Weight (kg)."`
	Glucose   *float64 `short:"g" help:"Blood glucose (mmol/L)."`
	Note      string   `short:"n" help:"Optional note."`
}

func (c *LogVitalsCmd) Validate() error {
	if c.Systolic == nil && c.Diastolic == nil && c.HeartRate == nil && c.Weight == nil && c.Glucose == nil {
		return fmt.Errorf("at least one vitals reading is required")
	}
	if (c.Systolic == nil) != (c.Diastolic == nil) {
		return fmt.Errorf("blood pressure requires both --systolic and --diastolic")
	}
	if c.Systolic != nil && (*c.Systolic <= 0 || *c.Diastolic <= 0) {
		return fmt.Errorf("blood pressure readings must be positive")
	}
	if c.HeartRate != nil && *c.HeartRate <= 0 {
		return fmt.Errorf("heart rate must be positive")
	}
	if c.Weight != nil && *c.Weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	if c.Glucose != nil && *c.Glucose <= 0 {
		return fmt.Errorf("glucose must be positive")
	}
	return nil
}

func (c *LogVitalsCmd) Run(ctx *cli.Context) error {
	log := newLog(constants.CategoryVitals, time.Now())
	log.Systolic = c.Systolic
	log.Diastolic = c.Diastolic
	log.HeartRate = c.HeartRate
	log.Weight = c.Weight
	log.Glucose = c.Glucose
	log.Note = c.Note

	if err := saveLog(ctx, log); err != nil {
		return err
	}

	fmt.Printf("Recorded %d vitals reading(s).\n", log.CountsAs())
	return nil
}
