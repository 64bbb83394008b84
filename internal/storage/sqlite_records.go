package storage

import (
	"fmt"
	"time"

	"github.com/nvoronova/trackerd/internal/logger"
	"github.com/nvoronova/trackerd/internal/models"
)

// HasRecord reports whether a completion record exists for the tracker on
// the given calendar day. Time of day is ignored. Degrades to false on read
// failure.
func (s *SQLiteStore) HasRecord(trackerID string, date time.Time) bool {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM records WHERE tracker_id = ? AND day = ?)`,
		trackerID, models.DayKey(date)).Scan(&exists)
	if err != nil {
		logger.Warn("Failed to check record existence", "tracker", trackerID, "error", err)
		return false
	}
	return exists
}

// AddRecord persists a completion record for the record's calendar day. The
// owning tracker must exist; inserting a record for an unknown tracker is a
// caller bug and panics.
func (s *SQLiteStore) AddRecord(rec models.TrackerRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return persistErr("add record", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM trackers WHERE id = ?)`, rec.TrackerID).Scan(&exists); err != nil {
		return persistErr("add record", err)
	}
	if !exists {
		panic(fmt.Sprintf("storage: record for tracker %s which does not exist", rec.TrackerID))
	}

	_, err = tx.Exec(`INSERT INTO records (tracker_id, day, completed_at) VALUES (?, ?, ?)`,
		rec.TrackerID, models.DayKey(rec.Date), time.Now().Format(time.RFC3339))
	if err != nil {
		return persistErr("add record", err)
	}

	return persistErr("add record", tx.Commit())
}

// DeleteRecord removes the day's completion record if one exists and
// reports whether anything was deleted. A missing record is a no-op, not an
// error.
func (s *SQLiteStore) DeleteRecord(trackerID string, date time.Time) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM records WHERE tracker_id = ? AND day = ?`,
		trackerID, models.DayKey(date))
	if err != nil {
		return false, persistErr("delete record", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, persistErr("delete record", err)
	}
	return rows > 0, nil
}

// ToggleRecord flips the completion state for (tracker, day) in a single
// transaction: delete when present, insert when absent. Doing both halves
// inside one transaction keeps the at-most-one-record-per-day invariant
// even with concurrent callers. Returns the resulting completion state.
func (s *SQLiteStore) ToggleRecord(trackerID string, date time.Time) (bool, error) {
	day := models.DayKey(date)

	tx, err := s.db.Begin()
	if err != nil {
		return false, persistErr("toggle record", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM records WHERE tracker_id = ? AND day = ?`, trackerID, day)
	if err != nil {
		return false, persistErr("toggle record", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, persistErr("toggle record", err)
	}

	completed := false
	if deleted == 0 {
		var exists bool
		if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM trackers WHERE id = ?)`, trackerID).Scan(&exists); err != nil {
			return false, persistErr("toggle record", err)
		}
		if !exists {
			panic(fmt.Sprintf("storage: record for tracker %s which does not exist", trackerID))
		}
		if _, err := tx.Exec(`INSERT INTO records (tracker_id, day, completed_at) VALUES (?, ?, ?)`,
			trackerID, day, time.Now().Format(time.RFC3339)); err != nil {
			return false, persistErr("toggle record", err)
		}
		completed = true
	}

	if err := tx.Commit(); err != nil {
		return false, persistErr("toggle record", err)
	}
	return completed, nil
}

// CompletedCount returns the total historical completions for a tracker.
// Degrades to 0 on read failure.
func (s *SQLiteStore) CompletedCount(trackerID string) int {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM records WHERE tracker_id = ?`, trackerID).Scan(&count)
	if err != nil {
		logger.Warn("Failed to count completions", "tracker", trackerID, "error", err)
		return 0
	}
	return count
}

// CompletedTrackerIDs returns the set of tracker ids with a completion
// record on the given calendar day. Degrades to an empty set on read
// failure.
func (s *SQLiteStore) CompletedTrackerIDs(date time.Time) map[string]bool {
	ids := make(map[string]bool)

	rows, err := s.db.Query(`SELECT tracker_id FROM records WHERE day = ?`, models.DayKey(date))
	if err != nil {
		logger.Warn("Failed to fetch completed tracker ids", "error", err)
		return ids
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			logger.Warn("Failed to scan completed tracker id", "error", err)
			return map[string]bool{}
		}
		ids[id] = true
	}
	if err := rows.Err(); err != nil {
		logger.Warn("Failed to iterate completed tracker ids", "error", err)
		return map[string]bool{}
	}
	return ids
}

// TotalRecordsCount returns the global completion count across all
// trackers. Degrades to 0 on read failure.
func (s *SQLiteStore) TotalRecordsCount() int {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&count); err != nil {
		logger.Warn("Failed to count records", "error", err)
		return 0
	}
	return count
}
