package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nvoronova/trackerd/internal/logger"
	"github.com/nvoronova/trackerd/internal/models"
)

// AddTracker persists a new tracker under the given category, creating the
// category when it does not exist yet. Both writes commit in one
// transaction.
func (s *SQLiteStore) AddTracker(t models.Tracker, categoryTitle string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return persistErr("add tracker", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO categories (title) VALUES (?) ON CONFLICT(title) DO NOTHING`, categoryTitle); err != nil {
		return persistErr("add tracker", err)
	}

	_, err = tx.Exec(`
		INSERT INTO trackers (id, name, emoji, color, schedule, category_title, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Emoji, []byte(t.Color), EncodeSchedule(t.Schedule), categoryTitle,
		time.Now().Format(time.RFC3339))
	if err != nil {
		return persistErr("add tracker", err)
	}

	return persistErr("add tracker", tx.Commit())
}

// UpdateTracker overwrites name, emoji, color and schedule of an existing
// tracker and re-resolves its category with the same find-or-create rule as
// AddTracker. The tracker must exist: updating an unknown id is a caller
// bug, not a runtime condition, and panics.
func (s *SQLiteStore) UpdateTracker(t models.Tracker, categoryTitle string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return persistErr("update tracker", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM trackers WHERE id = ?)`, t.ID).Scan(&exists); err != nil {
		return persistErr("update tracker", err)
	}
	if !exists {
		panic(fmt.Sprintf("storage: update for tracker %s which does not exist", t.ID))
	}

	if _, err := tx.Exec(`INSERT INTO categories (title) VALUES (?) ON CONFLICT(title) DO NOTHING`, categoryTitle); err != nil {
		return persistErr("update tracker", err)
	}

	_, err = tx.Exec(`
		UPDATE trackers
		SET name = ?, emoji = ?, color = ?, schedule = ?, category_title = ?
		WHERE id = ?`,
		t.Name, t.Emoji, []byte(t.Color), EncodeSchedule(t.Schedule), categoryTitle, t.ID)
	if err != nil {
		return persistErr("update tracker", err)
	}

	return persistErr("update tracker", tx.Commit())
}

// DeleteTracker removes the tracker; the foreign-key cascade removes its
// completion records.
func (s *SQLiteStore) DeleteTracker(id string) error {
	res, err := s.db.Exec(`DELETE FROM trackers WHERE id = ?`, id)
	if err != nil {
		return persistErr("delete tracker", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return persistErr("delete tracker", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) GetTracker(id string) (models.Tracker, error) {
	row := s.db.QueryRow(`
		SELECT id, name, emoji, color, schedule
		FROM trackers WHERE id = ?`, id)

	t, err := scanTracker(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Tracker{}, ErrNotFound
		}
		return models.Tracker{}, err
	}
	return t, nil
}

// ListTrackers returns every tracker with its category title, sorted by
// category title then tracker name (both case-insensitive) with the id as a
// stable tiebreaker. On read failure it degrades to an empty list.
func (s *SQLiteStore) ListTrackers() ([]TrackerRow, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.name, t.emoji, t.color, t.schedule, t.category_title
		FROM trackers t
		ORDER BY t.category_title COLLATE NOCASE ASC, t.name COLLATE NOCASE ASC, t.id ASC`)
	if err != nil {
		logger.Warn("Failed to list trackers", "error", err)
		return []TrackerRow{}, nil
	}
	defer rows.Close()

	var out []TrackerRow
	for rows.Next() {
		var (
			id, categoryTitle    string
			name, emoji          sql.NullString
			colorBlob, scheduled []byte
		)
		if err := rows.Scan(&id, &name, &emoji, &colorBlob, &scheduled, &categoryTitle); err != nil {
			logger.Warn("Failed to scan tracker row", "error", err)
			return []TrackerRow{}, nil
		}
		out = append(out, TrackerRow{
			Tracker:       MakeTracker(id, name, emoji, colorBlob, scheduled),
			CategoryTitle: categoryTitle,
		})
	}
	if err := rows.Err(); err != nil {
		logger.Warn("Failed to iterate tracker rows", "error", err)
		return []TrackerRow{}, nil
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTracker(row rowScanner) (models.Tracker, error) {
	var (
		id                   string
		name, emoji          sql.NullString
		colorBlob, scheduled []byte
	)
	if err := row.Scan(&id, &name, &emoji, &colorBlob, &scheduled); err != nil {
		return models.Tracker{}, err
	}
	return MakeTracker(id, name, emoji, colorBlob, scheduled), nil
}
