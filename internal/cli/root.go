package cli

import (
	"fmt"

	"github.com/mwhitfield/caretrack/internal/baseline"
	"github.com/mwhitfield/caretrack/internal/insights"
	"github.com/mwhitfield/caretrack/internal/notifier"
	"github.com/mwhitfield/caretrack/internal/scheduler"
	"github.com/mwhitfield/caretrack/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Notifier  *notifier.Desktop
	Scheduler *scheduler.Scheduler
	Baselines *baseline.Engine
	Insights  *insights.Aggregator
}

// Reschedule rebuilds the full reminder trigger set from the current
// obligations and settings. Called after any obligation or settings
// mutation.
func (c *Context) Reschedule() error {
	obligations, err := c.Store.GetAllObligations()
	if err != nil {
		return fmt.Errorf("failed to load obligations: %w", err)
	}
	settings, err := c.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	return c.Scheduler.RescheduleAll(obligations, settings)
}
