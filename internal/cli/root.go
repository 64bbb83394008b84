package cli

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/nvoronova/trackerd/internal/constants"
	"github.com/nvoronova/trackerd/internal/models"
	"github.com/nvoronova/trackerd/internal/provider"
	"github.com/nvoronova/trackerd/internal/storage"
)

type Context struct {
	Store storage.Provider

	dataProvider *provider.DataProvider
}

// Provider returns the shared data provider, built on first use so commands
// that never list trackers skip the initial fetch.
func (c *Context) Provider() *provider.DataProvider {
	if c.dataProvider == nil {
		c.dataProvider = provider.New(c.Store)
	}
	return c.dataProvider
}

// ParseSchedule parses a comma-separated list of weekday names into a
// canonical schedule. The word "daily" expands to every weekday; an empty
// string yields an empty schedule, which matches no date.
func ParseSchedule(s string) ([]models.Weekday, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.EqualFold(s, "daily") {
		return models.SortSchedule(models.AllWeekdays), nil
	}

	var schedule []models.Weekday
	for _, part := range strings.Split(s, ",") {
		wd, err := models.ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, wd)
	}
	return models.SortSchedule(schedule), nil
}

// ParseColor parses an RRGGBB hex string (with or without a leading '#')
// into the opaque color blob. An empty string yields the default color.
func ParseColor(s string) (models.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return models.DefaultColor, nil
	}
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 3 {
		return nil, fmt.Errorf("invalid color: %s (expected RRGGBB hex)", s)
	}
	return models.Color(raw), nil
}

// FormatSchedule renders a schedule for listings.
func FormatSchedule(schedule []models.Weekday) string {
	if len(schedule) == 0 {
		return "unscheduled"
	}
	if len(schedule) == len(models.AllWeekdays) {
		return "daily"
	}
	var days []string
	for _, wd := range models.SortSchedule(schedule) {
		days = append(days, wd.Short())
	}
	return strings.Join(days, ",")
}

// ParseDate parses a YYYY-MM-DD string, treating "" and "today" as the
// current day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "today" {
		return time.Now(), nil
	}
	day, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return day, nil
}

// findTracker resolves a tracker reference, accepting either an exact id or
// an exact name. A name shared by several trackers is ambiguous.
func findTracker(ctx *Context, ref string) (storage.TrackerRow, error) {
	rows, err := ctx.Store.ListTrackers()
	if err != nil {
		return storage.TrackerRow{}, err
	}

	var matches []storage.TrackerRow
	for _, row := range rows {
		if row.Tracker.ID == ref {
			return row, nil
		}
		if row.Tracker.Name == ref {
			matches = append(matches, row)
		}
	}
	switch len(matches) {
	case 0:
		return storage.TrackerRow{}, fmt.Errorf("tracker %q not found", ref)
	case 1:
		return matches[0], nil
	default:
		return storage.TrackerRow{}, fmt.Errorf("tracker name %q is ambiguous, use the id instead", ref)
	}
}
