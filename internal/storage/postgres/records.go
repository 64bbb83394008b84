package postgres

import (
	"fmt"
	"time"

	"github.com/nvoronova/trackerd/internal/logger"
	"github.com/nvoronova/trackerd/internal/models"
)

func (s *Store) HasRecord(trackerID string, date time.Time) bool {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM records WHERE tracker_id = $1 AND day = $2)`,
		trackerID, models.DayKey(date)).Scan(&exists)
	if err != nil {
		logger.Warn("Failed to check record existence", "tracker", trackerID, "error", err)
		return false
	}
	return exists
}

func (s *Store) AddRecord(rec models.TrackerRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return persistErr("add record", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM trackers WHERE id = $1)`, rec.TrackerID).Scan(&exists); err != nil {
		return persistErr("add record", err)
	}
	if !exists {
		panic(fmt.Sprintf("storage: record for tracker %s which does not exist", rec.TrackerID))
	}

	if _, err := tx.Exec(`INSERT INTO records (tracker_id, day) VALUES ($1, $2)`,
		rec.TrackerID, models.DayKey(rec.Date)); err != nil {
		return persistErr("add record", err)
	}

	return persistErr("add record", tx.Commit())
}

func (s *Store) DeleteRecord(trackerID string, date time.Time) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM records WHERE tracker_id = $1 AND day = $2`,
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

func (s *Store) ToggleRecord(trackerID string, date time.Time) (bool, error) {
	day := models.DayKey(date)

	tx, err := s.db.Begin()
	if err != nil {
		return false, persistErr("toggle record", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM records WHERE tracker_id = $1 AND day = $2`, trackerID, day)
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
		if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM trackers WHERE id = $1)`, trackerID).Scan(&exists); err != nil {
			return false, persistErr("toggle record", err)
		}
		if !exists {
			panic(fmt.Sprintf("storage: record for tracker %s which does not exist", trackerID))
		}
		if _, err := tx.Exec(`INSERT INTO records (tracker_id, day) VALUES ($1, $2)`, trackerID, day); err != nil {
			return false, persistErr("toggle record", err)
		}
		completed = true
	}

	if err := tx.Commit(); err != nil {
		return false, persistErr("toggle record", err)
	}
	return completed, nil
}

func (s *Store) CompletedCount(trackerID string) int {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM records WHERE tracker_id = $1`, trackerID).Scan(&count)
	if err != nil {
		logger.Warn("Failed to count completions", "tracker", trackerID, "error", err)
		return 0
	}
	return count
}

func (s *Store) CompletedTrackerIDs(date time.Time) map[string]bool {
	ids := make(map[string]bool)

	rows, err := s.db.Query(`SELECT tracker_id FROM records WHERE day = $1`, models.DayKey(date))
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

func (s *Store) TotalRecordsCount() int {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&count); err != nil {
		logger.Warn("Failed to count records", "error", err)
		return 0
	}
	return count
}
