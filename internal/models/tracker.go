package models

import (
	"time"

	"github.com/nvoronova/trackerd/internal/constants"
)

// Color is an opaque display-color token. The core stores and returns it
// without ever interpreting the bytes; rendering layers decide what it means.
type Color []byte

// DefaultColor is the fallback used when a persisted tracker row carries no
// color blob.
var DefaultColor = Color{0x00, 0x00, 0x00}

// Tracker is a recurring habit definition. The ID is assigned once at
// creation and never changes; updates replace the remaining fields in place.
type Tracker struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Emoji    string    `json:"emoji"`
	Color    Color     `json:"color"`
	Schedule []Weekday `json:"schedule"`
}

// TrackerCategory is a named grouping of trackers. Trackers is a projection
// of the persisted one-to-many category relation, not a stored list.
type TrackerCategory struct {
	Title    string    `json:"title"`
	Trackers []Tracker `json:"trackers"`
}

// TrackerRecord is a single day's completion mark for one tracker. Date is
// normalized to the start of the local calendar day so that two completions
// on the same day collide instead of duplicating.
type TrackerRecord struct {
	TrackerID string    `json:"tracker_id"`
	Date      time.Time `json:"date"`
}

// NormalizeDay truncates a timestamp to the start of its local calendar day.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey formats a timestamp as the canonical YYYY-MM-DD day key.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}
