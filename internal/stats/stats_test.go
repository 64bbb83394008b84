package stats

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/nvoronova/trackerd/internal/models"
	"github.com/nvoronova/trackerd/internal/storage"
)

func TestCompletedCount(t *testing.T) {
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})

	p := New(store)
	if got := p.CompletedCount(); got != 0 {
		t.Errorf("CompletedCount() on empty store = %d, want 0", got)
	}

	for _, id := range []string{"t1", "t2"} {
		err := store.AddTracker(models.Tracker{ID: id, Name: "Tracker " + id, Schedule: models.AllWeekdays}, "Health")
		if err != nil {
			t.Fatalf("AddTracker returned error: %v", err)
		}
	}

	monday := time.Date(2024, 1, 8, 9, 0, 0, 0, time.Local)
	records := []models.TrackerRecord{
		{TrackerID: "t1", Date: monday},
		{TrackerID: "t1", Date: monday.AddDate(0, 0, 1)},
		{TrackerID: "t2", Date: monday},
	}
	for _, rec := range records {
		if err := store.AddRecord(rec); err != nil {
			t.Fatalf("AddRecord returned error: %v", err)
		}
	}

	if got := p.CompletedCount(); got != 3 {
		t.Errorf("CompletedCount() = %d, want 3", got)
	}
	if got := p.TrackerCompletedCount("t1"); got != 2 {
		t.Errorf("TrackerCompletedCount(t1) = %d, want 2", got)
	}
	if got := p.TrackerCompletedCount("t2"); got != 1 {
		t.Errorf("TrackerCompletedCount(t2) = %d, want 1", got)
	}
}
