// Package visibility decides what a user sees on a given date: a fixed
// pipeline of schedule match, completion filter and free-text search over
// the full category set, plus a classification of why the result is empty.
// The engine is pure; it never touches storage and never consults the
// clock. In particular, picking the "today" filter snaps the selected date
// to the current day at the call site, not here.
package visibility

import (
	"strings"
	"time"

	"github.com/nvoronova/trackerd/internal/models"
)

// Input is everything a recomputation needs.
type Input struct {
	AllCategories []models.TrackerCategory
	SelectedDate  time.Time
	Filter        models.Filter
	SearchText    string
	// CompletedIDs is the set of tracker ids completed on SelectedDate,
	// fetched in bulk so the completion stage never queries per tracker.
	CompletedIDs map[string]bool
}

// Result is the exact list to display plus the empty-state classification.
type Result struct {
	Categories []models.TrackerCategory
	EmptyState models.EmptyState
}

// Compute runs the filter pipeline. Stage order is fixed: schedule match,
// completion filter, search. Each stage drops categories it leaves empty.
func Compute(in Input) Result {
	query := normalizeQuery(in.SearchText)

	byDate := filterByDate(in.AllCategories, in.SelectedDate)
	byCompletion := filterByCompletion(byDate, in.Filter, in.CompletedIDs)
	final := filterBySearch(byCompletion, query)

	return Result{
		Categories: final,
		EmptyState: classify(byDate, final, in.Filter, query),
	}
}

// filterByDate keeps trackers scheduled on the date's weekday. A tracker
// with an empty schedule matches no date at all; that is deliberate, not a
// missing "every day" default.
func filterByDate(categories []models.TrackerCategory, date time.Time) []models.TrackerCategory {
	weekday := models.WeekdayOf(date)

	return filterTrackers(categories, func(t models.Tracker) bool {
		return models.ScheduleContains(t.Schedule, weekday)
	})
}

func filterByCompletion(categories []models.TrackerCategory, filter models.Filter, completedIDs map[string]bool) []models.TrackerCategory {
	switch filter {
	case models.FilterCompleted:
		return filterTrackers(categories, func(t models.Tracker) bool {
			return completedIDs[t.ID]
		})
	case models.FilterUncompleted:
		return filterTrackers(categories, func(t models.Tracker) bool {
			return !completedIDs[t.ID]
		})
	default:
		// All and Today constrain nothing here.
		return categories
	}
}

func filterBySearch(categories []models.TrackerCategory, query string) []models.TrackerCategory {
	if query == "" {
		return categories
	}

	return filterTrackers(categories, func(t models.Tracker) bool {
		return strings.Contains(strings.ToLower(t.Name), query)
	})
}

// classify derives the empty state from the stage-one snapshot and the
// final result. byDate empty means nothing is scheduled at all; a non-empty
// byDate narrowed to nothing by an active filter or a search query is a
// no-results situation instead.
func classify(byDate, final []models.TrackerCategory, filter models.Filter, query string) models.EmptyState {
	switch {
	case len(byDate) == 0:
		return models.EmptyStateEmptyList
	case len(final) == 0 && (query != "" || filter.Active()):
		return models.EmptyStateNoResults
	case len(final) == 0:
		return models.EmptyStateEmptyList
	default:
		return models.EmptyStateNone
	}
}

func filterTrackers(categories []models.TrackerCategory, keep func(models.Tracker) bool) []models.TrackerCategory {
	var out []models.TrackerCategory
	for _, category := range categories {
		var kept []models.Tracker
		for _, t := range category.Trackers {
			if keep(t) {
				kept = append(kept, t)
			}
		}
		if len(kept) > 0 {
			out = append(out, models.TrackerCategory{Title: category.Title, Trackers: kept})
		}
	}
	return out
}

func normalizeQuery(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
