package meds

import (
	"fmt"
	"sort"

	"github.com/mwhitfield/caretrack/internal/cli"
)

type MedListCmd struct {
	All bool `short:"a" help:"Include inactive medications."`
}

func (c *MedListCmd) Run(ctx *cli.Context) error {
	obligations, err := ctx.Store.GetAllObligations()
	if err != nil {
		return fmt.Errorf("failed to load medications: %w", err)
	}

	sort.Slice(obligations, func(i, j int) bool {
		return obligations[i].Time < obligations[j].Time
	})

	shown := 0
	for _, o := range obligations {
		if !o.Active && !c.All {
			continue
		}
		status := ""
		if !o.Active {
			status = " (inactive)"
		}
		dosage := ""
		if o.Dosage != "" {
			dosage = fmt.Sprintf(" %s", o.Dosage)
		}
		fmt.Printf("%s  %s%s%s\n    ID: %s\n", o.Time, o.Name, dosage, status, o.ID)
		shown++
	}

	if shown == 0 {
		fmt.Println("No medications scheduled. Use 'caretrack med add' to add one.")
	}
	return nil
}
