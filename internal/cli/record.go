package cli

import (
	"fmt"

	"github.com/nvoronova/trackerd/internal/models"
	"github.com/nvoronova/trackerd/internal/stats"
)

type RecordCmd struct {
	Toggle RecordToggleCmd `cmd:"" help:"Toggle a tracker's completion for a day."`
}

type RecordToggleCmd struct {
	Ref  string `arg:"" help:"Tracker id or name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *RecordToggleCmd) Run(ctx *Context) error {
	row, err := findTracker(ctx, c.Ref)
	if err != nil {
		return err
	}

	day, err := ParseDate(c.Date)
	if err != nil {
		return err
	}

	completed, err := ctx.Provider().ToggleRecord(row.Tracker, day)
	if err != nil {
		return err
	}

	if completed {
		fmt.Printf("Marked %q as completed for %s\n", row.Tracker.Name, models.DayKey(day))
	} else {
		fmt.Printf("Unmarked %q for %s\n", row.Tracker.Name, models.DayKey(day))
	}
	return nil
}

type StatsCmd struct {
	Ref string `arg:"" optional:"" help:"Tracker id or name (default: overall totals)."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	provider := stats.New(ctx.Store)

	if c.Ref == "" {
		fmt.Printf("Trackers completed: %d\n", provider.CompletedCount())
		return nil
	}

	row, err := findTracker(ctx, c.Ref)
	if err != nil {
		return err
	}
	fmt.Printf("%s completed %d times\n", row.Tracker.Name, provider.TrackerCompletedCount(row.Tracker.ID))
	return nil
}
