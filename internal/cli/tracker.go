package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nvoronova/trackerd/internal/constants"
	"github.com/nvoronova/trackerd/internal/models"
)

type TrackerCmd struct {
	Add    TrackerAddCmd    `cmd:"" help:"Add a new tracker."`
	List   TrackerListCmd   `cmd:"" help:"List trackers grouped by category."`
	Edit   TrackerEditCmd   `cmd:"" help:"Edit an existing tracker."`
	Delete TrackerDeleteCmd `cmd:"" help:"Delete a tracker and its records."`
}

type TrackerAddCmd struct {
	Name     string `arg:"" help:"Tracker name."`
	Category string `help:"Category title." default:"General"`
	Schedule string `help:"Comma-separated weekdays (e.g. mon,wed,fri) or 'daily'." default:"daily"`
	Emoji    string `help:"Display emoji." default:""`
	Color    string `help:"Display color as RRGGBB hex." default:""`
}

func (c *TrackerAddCmd) Run(ctx *Context) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return errors.New("tracker name cannot be empty")
	}
	if len([]rune(name)) > constants.MaxTrackerNameLen {
		return fmt.Errorf("tracker name exceeds %d characters", constants.MaxTrackerNameLen)
	}

	schedule, err := ParseSchedule(c.Schedule)
	if err != nil {
		return err
	}
	color, err := ParseColor(c.Color)
	if err != nil {
		return err
	}

	tracker := models.Tracker{
		ID:       uuid.New().String(),
		Name:     name,
		Emoji:    c.Emoji,
		Color:    color,
		Schedule: schedule,
	}

	if err := ctx.Provider().Add(tracker, strings.TrimSpace(c.Category)); err != nil {
		return err
	}

	fmt.Printf("Added tracker: %s\n", name)
	return nil
}

type TrackerListCmd struct {
	IDs bool `help:"Show tracker ids."`
}

func (c *TrackerListCmd) Run(ctx *Context) error {
	categories := ctx.Provider().GetAllCategories()
	if len(categories) == 0 {
		fmt.Println("No trackers found.")
		return nil
	}

	for _, category := range categories {
		fmt.Printf("%s\n", category.Title)
		for _, tracker := range category.Trackers {
			line := fmt.Sprintf("  %s %s (%s)", tracker.Emoji, tracker.Name, FormatSchedule(tracker.Schedule))
			if c.IDs {
				line += fmt.Sprintf(" [%s]", tracker.ID)
			}
			fmt.Println(strings.TrimSpace(line))
		}
	}
	return nil
}

type TrackerEditCmd struct {
	Ref      string `arg:"" help:"Tracker id or name."`
	Name     string `help:"New tracker name."`
	Category string `help:"New category title."`
	Schedule string `help:"New schedule (weekday list or 'daily')."`
	Emoji    string `help:"New display emoji."`
	Color    string `help:"New display color as RRGGBB hex."`
}

func (c *TrackerEditCmd) Run(ctx *Context) error {
	row, err := findTracker(ctx, c.Ref)
	if err != nil {
		return err
	}

	tracker := row.Tracker
	categoryTitle := row.CategoryTitle

	if c.Name != "" {
		name := strings.TrimSpace(c.Name)
		if len([]rune(name)) > constants.MaxTrackerNameLen {
			return fmt.Errorf("tracker name exceeds %d characters", constants.MaxTrackerNameLen)
		}
		tracker.Name = name
	}
	if c.Category != "" {
		categoryTitle = strings.TrimSpace(c.Category)
	}
	if c.Schedule != "" {
		schedule, err := ParseSchedule(c.Schedule)
		if err != nil {
			return err
		}
		tracker.Schedule = schedule
	}
	if c.Emoji != "" {
		tracker.Emoji = c.Emoji
	}
	if c.Color != "" {
		color, err := ParseColor(c.Color)
		if err != nil {
			return err
		}
		tracker.Color = color
	}

	if err := ctx.Provider().Update(tracker, categoryTitle); err != nil {
		return err
	}

	fmt.Printf("Updated tracker: %s\n", tracker.Name)
	return nil
}

type TrackerDeleteCmd struct {
	Ref string `arg:"" help:"Tracker id or name."`
}

func (c *TrackerDeleteCmd) Run(ctx *Context) error {
	row, err := findTracker(ctx, c.Ref)
	if err != nil {
		return err
	}

	if err := ctx.Provider().Delete(row.Tracker.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted tracker: %s\n", row.Tracker.Name)
	return nil
}
