package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nvoronova/trackerd/internal/models"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func mustAddTracker(t *testing.T, store *SQLiteStore, id, name, category string, schedule ...models.Weekday) {
	t.Helper()

	tracker := models.Tracker{
		ID:       id,
		Name:     name,
		Emoji:    "🙂",
		Color:    models.Color{0x12, 0x34, 0x56},
		Schedule: schedule,
	}
	if err := store.AddTracker(tracker, category); err != nil {
		t.Fatalf("failed to add tracker %s: %v", name, err)
	}
}

func TestCategories(t *testing.T) {
	t.Run("add trims whitespace", func(t *testing.T) {
		store := setupTestStore(t)

		if err := store.AddCategory("  Health \n"); err != nil {
			t.Fatalf("AddCategory returned error: %v", err)
		}

		titles := store.FetchCategoryTitles()
		if len(titles) != 1 || titles[0] != "Health" {
			t.Errorf("FetchCategoryTitles() = %v, want [Health]", titles)
		}
	})

	t.Run("add with blank title is a no-op", func(t *testing.T) {
		store := setupTestStore(t)

		if err := store.AddCategory("   "); err != nil {
			t.Fatalf("AddCategory returned error: %v", err)
		}
		if titles := store.FetchCategoryTitles(); len(titles) != 0 {
			t.Errorf("FetchCategoryTitles() = %v, want empty", titles)
		}
	})

	t.Run("duplicate title fails with persistence error", func(t *testing.T) {
		store := setupTestStore(t)

		if err := store.AddCategory("Health"); err != nil {
			t.Fatalf("AddCategory returned error: %v", err)
		}
		err := store.AddCategory("Health")
		if err == nil {
			t.Fatal("AddCategory accepted a duplicate title")
		}
		var perr *PersistenceError
		if !errors.As(err, &perr) {
			t.Errorf("AddCategory error = %T, want *PersistenceError", err)
		}
	})

	t.Run("titles sorted ascending", func(t *testing.T) {
		store := setupTestStore(t)

		for _, title := range []string{"Work", "Health", "Chores"} {
			if err := store.AddCategory(title); err != nil {
				t.Fatalf("AddCategory(%s) returned error: %v", title, err)
			}
		}

		titles := store.FetchCategoryTitles()
		want := []string{"Chores", "Health", "Work"}
		if len(titles) != len(want) {
			t.Fatalf("FetchCategoryTitles() = %v, want %v", titles, want)
		}
		for i := range want {
			if titles[i] != want[i] {
				t.Errorf("titles[%d] = %s, want %s", i, titles[i], want[i])
			}
		}
	})

	t.Run("find or create is idempotent", func(t *testing.T) {
		store := setupTestStore(t)

		if err := store.FindOrCreateCategory("Health"); err != nil {
			t.Fatalf("FindOrCreateCategory returned error: %v", err)
		}
		if err := store.FindOrCreateCategory("Health"); err != nil {
			t.Fatalf("FindOrCreateCategory second call returned error: %v", err)
		}
		if titles := store.FetchCategoryTitles(); len(titles) != 1 {
			t.Errorf("FetchCategoryTitles() = %v, want exactly one entry", titles)
		}
	})

	t.Run("delete does not cascade to trackers", func(t *testing.T) {
		store := setupTestStore(t)
		mustAddTracker(t, store, "t1", "Drink water", "Health", models.Monday)

		// The tracker row keeps its category title; only the category record goes.
		if err := store.DeleteCategory("Health"); err != nil {
			t.Fatalf("DeleteCategory returned error: %v", err)
		}
		if titles := store.FetchCategoryTitles(); len(titles) != 0 {
			t.Errorf("FetchCategoryTitles() = %v, want empty", titles)
		}
		rows, err := store.ListTrackers()
		if err != nil {
			t.Fatalf("ListTrackers returned error: %v", err)
		}
		if len(rows) != 1 {
			t.Errorf("ListTrackers() returned %d rows, want 1", len(rows))
		}
	})

	t.Run("delete unknown category", func(t *testing.T) {
		store := setupTestStore(t)

		if err := store.DeleteCategory("Nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("DeleteCategory(Nope) = %v, want ErrNotFound", err)
		}
	})
}

func TestTrackerCRUD(t *testing.T) {
	t.Run("add creates category by title", func(t *testing.T) {
		store := setupTestStore(t)
		mustAddTracker(t, store, "t1", "Run", "Health", models.Monday, models.Wednesday)

		titles := store.FetchCategoryTitles()
		if len(titles) != 1 || titles[0] != "Health" {
			t.Errorf("FetchCategoryTitles() = %v, want [Health]", titles)
		}

		got, err := store.GetTracker("t1")
		if err != nil {
			t.Fatalf("GetTracker returned error: %v", err)
		}
		if got.Name != "Run" || got.Emoji != "🙂" {
			t.Errorf("GetTracker() = %+v", got)
		}
		if len(got.Schedule) != 2 || got.Schedule[0] != models.Monday || got.Schedule[1] != models.Wednesday {
			t.Errorf("GetTracker().Schedule = %v", got.Schedule)
		}
	})

	t.Run("add reuses existing category", func(t *testing.T) {
		store := setupTestStore(t)
		mustAddTracker(t, store, "t1", "Run", "Health", models.Monday)
		mustAddTracker(t, store, "t2", "Sleep", "Health", models.Monday)

		if titles := store.FetchCategoryTitles(); len(titles) != 1 {
			t.Errorf("FetchCategoryTitles() = %v, want a single category", titles)
		}
	})

	t.Run("list sorted by category then name, case-insensitive", func(t *testing.T) {
		store := setupTestStore(t)
		mustAddTracker(t, store, "t1", "yoga", "work", models.Monday)
		mustAddTracker(t, store, "t2", "Email", "work", models.Monday)
		mustAddTracker(t, store, "t3", "run", "Health", models.Monday)
		mustAddTracker(t, store, "t4", "Drink water", "Health", models.Monday)

		rows, err := store.ListTrackers()
		if err != nil {
			t.Fatalf("ListTrackers returned error: %v", err)
		}

		var got []string
		for _, row := range rows {
			got = append(got, row.Tracker.Name)
		}
		want := []string{"Drink water", "run", "Email", "yoga"}
		if len(got) != len(want) {
			t.Fatalf("ListTrackers() order = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("row %d = %s, want %s", i, got[i], want[i])
			}
		}
	})

	t.Run("update preserves id and moves category", func(t *testing.T) {
		store := setupTestStore(t)
		mustAddTracker(t, store, "t1", "Run", "Health", models.Monday)

		updated := models.Tracker{
			ID:       "t1",
			Name:     "Run 5k",
			Emoji:    "🏃",
			Color:    models.Color{0xff, 0x00, 0x00},
			Schedule: []models.Weekday{models.Friday},
		}
		if err := store.UpdateTracker(updated, "Sport"); err != nil {
			t.Fatalf("UpdateTracker returned error: %v", err)
		}

		rows, err := store.ListTrackers()
		if err != nil {
			t.Fatalf("ListTrackers returned error: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("ListTrackers() returned %d rows, want 1", len(rows))
		}
		row := rows[0]
		if row.Tracker.ID != "t1" {
			t.Errorf("tracker id changed to %s", row.Tracker.ID)
		}
		if row.Tracker.Name != "Run 5k" || row.CategoryTitle != "Sport" {
			t.Errorf("update not applied: %+v under %s", row.Tracker, row.CategoryTitle)
		}
		if len(row.Tracker.Schedule) != 1 || row.Tracker.Schedule[0] != models.Friday {
			t.Errorf("schedule not replaced: %v", row.Tracker.Schedule)
		}
	})

	t.Run("update of unknown tracker panics", func(t *testing.T) {
		store := setupTestStore(t)

		defer func() {
			if recover() == nil {
				t.Error("UpdateTracker with unknown id did not panic")
			}
		}()
		_ = store.UpdateTracker(models.Tracker{ID: "ghost"}, "Health")
	})

	t.Run("delete cascades completion records", func(t *testing.T) {
		store := setupTestStore(t)
		mustAddTracker(t, store, "t1", "Run", "Health", models.Monday)

		day := time.Date(2024, 1, 8, 12, 0, 0, 0, time.Local)
		if err := store.AddRecord(models.TrackerRecord{TrackerID: "t1", Date: day}); err != nil {
			t.Fatalf("AddRecord returned error: %v", err)
		}
		if store.TotalRecordsCount() != 1 {
			t.Fatal("record was not persisted")
		}

		if err := store.DeleteTracker("t1"); err != nil {
			t.Fatalf("DeleteTracker returned error: %v", err)
		}
		if got := store.TotalRecordsCount(); got != 0 {
			t.Errorf("TotalRecordsCount() = %d after cascade delete, want 0", got)
		}
	})

	t.Run("defensive defaults for malformed rows", func(t *testing.T) {
		store := setupTestStore(t)
		if err := store.FindOrCreateCategory("Health"); err != nil {
			t.Fatalf("FindOrCreateCategory returned error: %v", err)
		}
		// Simulate a legacy row with missing optional fields.
		_, err := store.db.Exec(`
			INSERT INTO trackers (id, name, emoji, color, schedule, category_title, created_at)
			VALUES ('legacy', NULL, NULL, NULL, NULL, 'Health', '2024-01-01T00:00:00Z')`)
		if err != nil {
			t.Fatalf("failed to insert legacy row: %v", err)
		}

		rows, err := store.ListTrackers()
		if err != nil {
			t.Fatalf("ListTrackers returned error: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("ListTrackers() returned %d rows, want 1", len(rows))
		}
		got := rows[0].Tracker
		if got.Name != "" || got.Emoji != "" {
			t.Errorf("missing strings not defaulted: %+v", got)
		}
		if string(got.Color) != string(models.DefaultColor) {
			t.Errorf("missing color = %v, want default black", got.Color)
		}
		if len(got.Schedule) != 0 {
			t.Errorf("missing schedule = %v, want empty", got.Schedule)
		}
	})

	t.Run("get unknown tracker", func(t *testing.T) {
		store := setupTestStore(t)
		if _, err := store.GetTracker("ghost"); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetTracker(ghost) error = %v, want ErrNotFound", err)
		}
	})
}

func TestRecords(t *testing.T) {
	day := time.Date(2024, 1, 10, 14, 30, 0, 0, time.Local)

	t.Run("toggle alternates and never duplicates", func(t *testing.T) {
		store := setupTestStore(t)
		mustAddTracker(t, store, "t1", "Run", "Health", models.Wednesday)

		for i := 0; i < 3; i++ {
			completed, err := store.ToggleRecord("t1", day)
			if err != nil {
				t.Fatalf("ToggleRecord returned error: %v", err)
			}
			if !completed {
				t.Fatalf("toggle %d: expected completed=true", i)
			}
			if !store.HasRecord("t1", day) {
				t.Fatalf("toggle %d: HasRecord=false after completion", i)
			}
			if got := store.CompletedCount("t1"); got != 1 {
				t.Fatalf("toggle %d: CompletedCount=%d, want 1", i, got)
			}

			completed, err = store.ToggleRecord("t1", day)
			if err != nil {
				t.Fatalf("ToggleRecord returned error: %v", err)
			}
			if completed {
				t.Fatalf("toggle %d: expected completed=false", i)
			}
			if store.HasRecord("t1", day) {
				t.Fatalf("toggle %d: HasRecord=true after removal", i)
			}
			if got := store.CompletedCount("t1"); got != 0 {
				t.Fatalf("toggle %d: CompletedCount=%d, want 0", i, got)
			}
		}
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		store := setupTestStore(t)
		mustAddTracker(t, store, "t1", "Run", "Health", models.Wednesday)

		completedOn := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)
		if err := store.AddRecord(models.TrackerRecord{TrackerID: "t1", Date: completedOn}); err != nil {
			t.Fatalf("AddRecord returned error: %v", err)
		}

		lateSameDay := time.Date(2024, 1, 10, 23, 59, 0, 0, time.Local)
		if !store.HasRecord("t1", lateSameDay) {
			t.Error("HasRecord = false for the same calendar day")
		}
		nextMidnight := time.Date(2024, 1, 11, 0, 0, 0, 0, time.Local)
		if store.HasRecord("t1", nextMidnight) {
			t.Error("HasRecord = true for the following day")
		}
	})

	t.Run("delete record is a no-op when absent", func(t *testing.T) {
		store := setupTestStore(t)
		mustAddTracker(t, store, "t1", "Run", "Health", models.Wednesday)

		deleted, err := store.DeleteRecord("t1", day)
		if err != nil {
			t.Fatalf("DeleteRecord returned error: %v", err)
		}
		if deleted {
			t.Error("DeleteRecord reported a deletion with no record present")
		}
	})

	t.Run("completed ids for a day", func(t *testing.T) {
		store := setupTestStore(t)
		mustAddTracker(t, store, "t1", "Run", "Health", models.Wednesday)
		mustAddTracker(t, store, "t2", "Read", "Leisure", models.Wednesday)
		mustAddTracker(t, store, "t3", "Sleep", "Health", models.Wednesday)

		otherDay := day.AddDate(0, 0, 1)
		if err := store.AddRecord(models.TrackerRecord{TrackerID: "t1", Date: day}); err != nil {
			t.Fatalf("AddRecord returned error: %v", err)
		}
		if err := store.AddRecord(models.TrackerRecord{TrackerID: "t2", Date: day}); err != nil {
			t.Fatalf("AddRecord returned error: %v", err)
		}
		if err := store.AddRecord(models.TrackerRecord{TrackerID: "t3", Date: otherDay}); err != nil {
			t.Fatalf("AddRecord returned error: %v", err)
		}

		ids := store.CompletedTrackerIDs(day)
		if len(ids) != 2 || !ids["t1"] || !ids["t2"] {
			t.Errorf("CompletedTrackerIDs(%s) = %v, want {t1,t2}", models.DayKey(day), ids)
		}
		if got := store.TotalRecordsCount(); got != 3 {
			t.Errorf("TotalRecordsCount() = %d, want 3", got)
		}
	})

	t.Run("record for unknown tracker panics", func(t *testing.T) {
		store := setupTestStore(t)

		defer func() {
			if recover() == nil {
				t.Error("AddRecord for unknown tracker did not panic")
			}
		}()
		_ = store.AddRecord(models.TrackerRecord{TrackerID: "ghost", Date: day})
	})
}
