package provider

import (
	"time"

	"github.com/nvoronova/trackerd/internal/models"
	"github.com/nvoronova/trackerd/internal/storage"
)

// Update describes the minimal change between two consecutive snapshots of
// the sorted tracker listing: row positions removed from the previous
// snapshot and row positions added in the new one. A moved row shows up as
// one delete plus one insert.
type Update struct {
	Inserted []int
	Deleted  []int
}

// Listener receives snapshot updates. It is invoked synchronously after
// each committed mutation and must not itself mutate the provider, or
// recomputation would recurse.
type Listener func(Update)

// DataProvider bridges the storage backend into a single always-sorted
// tracker view and reports incremental changes after every mutation. All
// methods are intended for a single goroutine; the provider adds no locking
// of its own.
type DataProvider struct {
	store    storage.Provider
	snapshot []storage.TrackerRow

	listener        Listener
	recordsListener func()
}

// New builds a provider over the given store and performs the initial
// fetch. A failed initial fetch degrades to an empty snapshot.
func New(store storage.Provider) *DataProvider {
	p := &DataProvider{store: store}
	p.snapshot, _ = store.ListTrackers()
	return p
}

// SetListener registers the single snapshot listener.
func (p *DataProvider) SetListener(l Listener) {
	p.listener = l
}

// SetRecordsListener registers a callback fired after a completion record
// actually changed (toggle committed).
func (p *DataProvider) SetRecordsListener(f func()) {
	p.recordsListener = f
}

// Refresh refetches the sorted listing, diffs it against the previous
// snapshot by tracker id, and delivers the update to the listener.
func (p *DataProvider) Refresh() {
	next, err := p.store.ListTrackers()
	if err != nil {
		return
	}

	update := diff(p.snapshot, next)
	p.snapshot = next

	if p.listener != nil && (len(update.Inserted) > 0 || len(update.Deleted) > 0) {
		p.listener(update)
	}
}

// NumberOfTrackers returns the size of the current snapshot.
func (p *DataProvider) NumberOfTrackers() int {
	return len(p.snapshot)
}

// TrackerAt returns the tracker at the given snapshot position.
func (p *DataProvider) TrackerAt(pos int) models.Tracker {
	return p.snapshot[pos].Tracker
}

// GetAllCategories groups the current snapshot into categories in sort
// order. Categories without trackers are absent from this projection even
// though their records still exist in storage.
func (p *DataProvider) GetAllCategories() []models.TrackerCategory {
	var out []models.TrackerCategory
	for _, row := range p.snapshot {
		if len(out) == 0 || out[len(out)-1].Title != row.CategoryTitle {
			out = append(out, models.TrackerCategory{Title: row.CategoryTitle})
		}
		last := &out[len(out)-1]
		last.Trackers = append(last.Trackers, row.Tracker)
	}
	return out
}

// Add persists a new tracker and refreshes the snapshot. Write failures
// propagate to the caller.
func (p *DataProvider) Add(t models.Tracker, categoryTitle string) error {
	if err := p.store.AddTracker(t, categoryTitle); err != nil {
		return err
	}
	p.Refresh()
	return nil
}

// Update overwrites an existing tracker in place and refreshes the
// snapshot.
func (p *DataProvider) Update(t models.Tracker, categoryTitle string) error {
	if err := p.store.UpdateTracker(t, categoryTitle); err != nil {
		return err
	}
	p.Refresh()
	return nil
}

// Delete removes a tracker (and, via the store's cascade, its completion
// records) and refreshes the snapshot.
func (p *DataProvider) Delete(id string) error {
	if err := p.store.DeleteTracker(id); err != nil {
		return err
	}
	p.Refresh()
	return nil
}

// IsTrackerCompleted reports the tracker's completion state on the given
// day.
func (p *DataProvider) IsTrackerCompleted(t models.Tracker, date time.Time) bool {
	return p.store.HasRecord(t.ID, date)
}

// ToggleRecord flips the tracker's completion state for the day and
// reports the new state. The flip is atomic at the storage layer.
func (p *DataProvider) ToggleRecord(t models.Tracker, date time.Time) (bool, error) {
	completed, err := p.store.ToggleRecord(t.ID, date)
	if err != nil {
		return false, err
	}
	if p.recordsListener != nil {
		p.recordsListener()
	}
	return completed, nil
}

// CompletedTrackerIDs returns the ids of all trackers completed on the day.
func (p *DataProvider) CompletedTrackerIDs(date time.Time) map[string]bool {
	return p.store.CompletedTrackerIDs(date)
}

// CompletedCount returns the tracker's total historical completions.
func (p *DataProvider) CompletedCount(t models.Tracker) int {
	return p.store.CompletedCount(t.ID)
}

// TotalCompletedCount returns the completion count across all trackers.
func (p *DataProvider) TotalCompletedCount() int {
	return p.store.TotalRecordsCount()
}
