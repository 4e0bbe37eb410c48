package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/mwhitfield/caretrack/internal/baseline"
	"github.com/mwhitfield/caretrack/internal/cli"
	"github.com/mwhitfield/caretrack/internal/cli/baselines"
	"github.com/mwhitfield/caretrack/internal/cli/insightview"
	"github.com/mwhitfield/caretrack/internal/cli/logs"
	"github.com/mwhitfield/caretrack/internal/cli/meds"
	"github.com/mwhitfield/caretrack/internal/cli/settingsview"
	"github.com/mwhitfield/caretrack/internal/cli/system"
	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/errors"
	"github.com/mwhitfield/caretrack/internal/insights"
	"github.com/mwhitfield/caretrack/internal/logger"
	"github.com/mwhitfield/caretrack/internal/notifier"
	"github.com/mwhitfield/caretrack/internal/scheduler"
	"github.com/mwhitfield/caretrack/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"path" default:"~/.config/caretrack/caretrack.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init system.InitCmd `cmd:"" help:"Initialize caretrack storage."`
	Med  struct {
		Add    meds.MedAddCmd    `cmd:"" help:"Add a scheduled medication."`
		List   meds.MedListCmd   `cmd:"" help:"List scheduled medications." default:"1"`
		Edit   meds.MedEditCmd   `cmd:"" help:"Edit a scheduled medication."`
		Delete meds.MedDeleteCmd `cmd:"" help:"Delete a scheduled medication."`
	} `cmd:"" help:"Manage the medication schedule."`
	Log struct {
		Med     logs.LogMedCmd     `cmd:"" help:"Record a medication as taken."`
		Meal    logs.LogMealCmd    `cmd:"" help:"Record a meal."`
		Vitals  logs.LogVitalsCmd  `cmd:"" help:"Record vitals readings."`
		Mood    logs.LogMoodCmd    `cmd:"" help:"Record a mood."`
		Sleep   logs.LogSleepCmd   `cmd:"" help:"Record last night's sleep."`
		Symptom logs.LogSymptomCmd `cmd:"" help:"Record a symptom."`
	} `cmd:"" help:"Record daily logs."`
	Reschedule system.RescheduleCmd `cmd:"" help:"Rebuild all reminder triggers."`
	Remind     system.RemindCmd     `cmd:"" help:"Schedule a one-off reminder."`
	Notify     struct {
		Run     system.NotifyCmd        `cmd:"" default:"1" hidden:"" help:"Deliver due notifications (run from cron)."`
		Enable  system.NotifyEnableCmd  `cmd:"" help:"Enable desktop notifications."`
		Disable system.NotifyDisableCmd `cmd:"" help:"Disable desktop notifications."`
	} `cmd:"" help:"Notification delivery and permission."`
	Snooze   system.SnoozeCmd        `cmd:"" help:"Snooze a delivered reminder."`
	Done     system.DoneCmd          `cmd:"" help:"Mark a delivered reminder as done."`
	Insights insightview.InsightsCmd `cmd:"" help:"Show pattern insights."`
	Baseline struct {
		List    baselines.BaselineListCmd    `cmd:"" help:"Show computed baselines." default:"1"`
		Confirm baselines.BaselineConfirmCmd `cmd:"" help:"Confirm a baseline as typical."`
		Reject  baselines.BaselineRejectCmd  `cmd:"" help:"Reject a baseline."`
		Dismiss baselines.BaselineDismissCmd `cmd:"" help:"Stop prompting about a baseline."`
	} `cmd:"" help:"Review typical-day baselines."`
	Settings settingsview.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("caretrack"),
		kong.Description("Caregiver health tracker: medication reminders, daily logs, and trend insights"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	store := storage.NewSQLiteStore(CLI.Config)
	desktop := notifier.NewDesktop(store)
	engine := baseline.New(store, store)

	appCtx := &cli.Context{
		Store:     store,
		Notifier:  desktop,
		Scheduler: scheduler.New(desktop, store),
		Baselines: engine,
		Insights: insights.New(
			insights.NewCoOccurrence(store, engine),
			insights.NewRules(store),
			engine,
			store,
			store,
			insights.RandomSelector,
		),
	}

	// Load the store before running the command (the init command handles its
	// own setup).
	if !CLI.Init.Force && ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
