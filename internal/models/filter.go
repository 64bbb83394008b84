package models

import "fmt"

// Filter is a display mode constraining which trackers are shown based on
// their completion state on the selected date.
type Filter string

const (
	FilterAll         Filter = "all"
	FilterToday       Filter = "today"
	FilterCompleted   Filter = "completed"
	FilterUncompleted Filter = "uncompleted"
)

// AllFilters lists the filters in presentation order.
var AllFilters = []Filter{FilterAll, FilterToday, FilterCompleted, FilterUncompleted}

// Active reports whether the filter actually excludes trackers. All and
// Today pass every tracker through; only Completed and Uncompleted narrow
// the result, which matters for empty-state classification.
func (f Filter) Active() bool {
	return f == FilterCompleted || f == FilterUncompleted
}

// ParseFilter parses a filter name.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterToday, FilterCompleted, FilterUncompleted:
		return Filter(s), nil
	}
	return "", fmt.Errorf("invalid filter: %s", s)
}

// EmptyState classifies why a visible list is empty, so the UI can pick the
// right placeholder.
type EmptyState string

const (
	// EmptyStateNone means the list is non-empty.
	EmptyStateNone EmptyState = "none"
	// EmptyStateEmptyList means nothing is scheduled for the selected date.
	EmptyStateEmptyList EmptyState = "empty_list"
	// EmptyStateNoResults means trackers are scheduled but the current
	// filter or search hides all of them.
	EmptyStateNoResults EmptyState = "no_results"
)
