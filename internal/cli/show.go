package cli

import (
	"fmt"
	"time"

	"github.com/nvoronova/trackerd/internal/models"
	"github.com/nvoronova/trackerd/internal/visibility"
)

type ShowCmd struct {
	Date   string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Filter string `help:"Display filter: all, today, completed, uncompleted." default:"all"`
	Search string `help:"Show only trackers whose name contains this text." default:""`
}

func (c *ShowCmd) Run(ctx *Context) error {
	day, err := ParseDate(c.Date)
	if err != nil {
		return err
	}
	filter, err := models.ParseFilter(c.Filter)
	if err != nil {
		return err
	}
	// Picking "today" always snaps the view back to the current day.
	if filter == models.FilterToday {
		day = time.Now()
	}

	result := visibility.Compute(visibility.Input{
		AllCategories: ctx.Provider().GetAllCategories(),
		SelectedDate:  day,
		Filter:        filter,
		SearchText:    c.Search,
		CompletedIDs:  ctx.Store.CompletedTrackerIDs(day),
	})

	switch result.EmptyState {
	case models.EmptyStateEmptyList:
		fmt.Printf("Nothing scheduled for %s.\n", models.DayKey(day))
		return nil
	case models.EmptyStateNoResults:
		fmt.Println("No trackers match the current filter or search.")
		return nil
	}

	completed := ctx.Store.CompletedTrackerIDs(day)
	fmt.Printf("Trackers for %s:\n\n", models.DayKey(day))
	for _, category := range result.Categories {
		fmt.Printf("%s\n", category.Title)
		for _, tracker := range category.Trackers {
			status := "[ ]"
			if completed[tracker.ID] {
				status = "[x]"
			}
			fmt.Printf("  %s %s %s\n", status, tracker.Emoji, tracker.Name)
		}
	}
	return nil
}
