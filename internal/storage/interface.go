package storage

import (
	"time"

	"github.com/nvoronova/trackerd/internal/models"
)

// TrackerRow is one row of the sorted tracker listing: the domain tracker
// plus the title of the category it currently belongs to.
type TrackerRow struct {
	Tracker       models.Tracker
	CategoryTitle string
}

// Provider is the persistence contract for trackers, categories and
// completion records.
//
// Write operations either fully commit or fail with a *PersistenceError;
// no partial state is ever observable. Read operations degrade: on failure
// they log a warning and return an empty or zero result instead of
// propagating, so a broken read never takes down a list view.
//
// UpdateTracker and AddRecord document tracker existence as a precondition;
// calling them with an unknown tracker id is a programmer error and panics.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Categories
	AddCategory(title string) error
	DeleteCategory(title string) error
	FetchCategoryTitles() []string
	// FindOrCreateCategory resolves a title to an existing category record,
	// creating one when absent. All category resolution goes through here so
	// the unique-title invariant lives in one place.
	FindOrCreateCategory(title string) error

	// Trackers
	AddTracker(t models.Tracker, categoryTitle string) error
	UpdateTracker(t models.Tracker, categoryTitle string) error
	DeleteTracker(id string) error
	GetTracker(id string) (models.Tracker, error)
	// ListTrackers returns every tracker sorted by (category title, name),
	// both case-insensitive, with tracker id as the stable tiebreaker.
	ListTrackers() ([]TrackerRow, error)

	// Completion records, keyed by (tracker id, local calendar day)
	HasRecord(trackerID string, date time.Time) bool
	AddRecord(rec models.TrackerRecord) error
	// DeleteRecord removes the record for the day, if any. It reports
	// whether a row was actually deleted; a missing record is not an error.
	DeleteRecord(trackerID string, date time.Time) (bool, error)
	// ToggleRecord atomically inserts the day's record when absent and
	// deletes it when present, in a single transaction. It returns the
	// resulting completion state.
	ToggleRecord(trackerID string, date time.Time) (bool, error)
	CompletedCount(trackerID string) int
	CompletedTrackerIDs(date time.Time) map[string]bool
	TotalRecordsCount() int

	// Utils
	GetConfigPath() string
}
