package postgres

import (
	"database/sql"
	"fmt"

	"github.com/nvoronova/trackerd/internal/logger"
	"github.com/nvoronova/trackerd/internal/models"
	"github.com/nvoronova/trackerd/internal/storage"
)

func (s *Store) AddTracker(t models.Tracker, categoryTitle string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return persistErr("add tracker", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO categories (title) VALUES ($1) ON CONFLICT (title) DO NOTHING`, categoryTitle); err != nil {
		return persistErr("add tracker", err)
	}

	_, err = tx.Exec(`
		INSERT INTO trackers (id, name, emoji, color, schedule, category_title)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.Name, t.Emoji, []byte(t.Color), storage.EncodeSchedule(t.Schedule), categoryTitle)
	if err != nil {
		return persistErr("add tracker", err)
	}

	return persistErr("add tracker", tx.Commit())
}

func (s *Store) UpdateTracker(t models.Tracker, categoryTitle string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return persistErr("update tracker", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM trackers WHERE id = $1)`, t.ID).Scan(&exists); err != nil {
		return persistErr("update tracker", err)
	}
	if !exists {
		panic(fmt.Sprintf("storage: update for tracker %s which does not exist", t.ID))
	}

	if _, err := tx.Exec(`INSERT INTO categories (title) VALUES ($1) ON CONFLICT (title) DO NOTHING`, categoryTitle); err != nil {
		return persistErr("update tracker", err)
	}

	_, err = tx.Exec(`
		UPDATE trackers
		SET name = $1, emoji = $2, color = $3, schedule = $4, category_title = $5
		WHERE id = $6`,
		t.Name, t.Emoji, []byte(t.Color), storage.EncodeSchedule(t.Schedule), categoryTitle, t.ID)
	if err != nil {
		return persistErr("update tracker", err)
	}

	return persistErr("update tracker", tx.Commit())
}

func (s *Store) DeleteTracker(id string) error {
	res, err := s.db.Exec(`DELETE FROM trackers WHERE id = $1`, id)
	if err != nil {
		return persistErr("delete tracker", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return persistErr("delete tracker", err)
	}
	if rows == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) GetTracker(id string) (models.Tracker, error) {
	var (
		trackerID            string
		name, emoji          sql.NullString
		colorBlob, scheduled []byte
	)
	err := s.db.QueryRow(`
		SELECT id, name, emoji, color, schedule
		FROM trackers WHERE id = $1`, id).
		Scan(&trackerID, &name, &emoji, &colorBlob, &scheduled)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Tracker{}, storage.ErrNotFound
		}
		return models.Tracker{}, err
	}
	return storage.MakeTracker(trackerID, name, emoji, colorBlob, scheduled), nil
}

func (s *Store) ListTrackers() ([]storage.TrackerRow, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.name, t.emoji, t.color, t.schedule, t.category_title
		FROM trackers t
		ORDER BY LOWER(t.category_title) ASC, LOWER(t.name) ASC, t.id ASC`)
	if err != nil {
		logger.Warn("Failed to list trackers", "error", err)
		return []storage.TrackerRow{}, nil
	}
	defer rows.Close()

	var out []storage.TrackerRow
	for rows.Next() {
		var (
			id, categoryTitle    string
			name, emoji          sql.NullString
			colorBlob, scheduled []byte
		)
		if err := rows.Scan(&id, &name, &emoji, &colorBlob, &scheduled, &categoryTitle); err != nil {
			logger.Warn("Failed to scan tracker row", "error", err)
			return []storage.TrackerRow{}, nil
		}
		out = append(out, storage.TrackerRow{
			Tracker:       storage.MakeTracker(id, name, emoji, colorBlob, scheduled),
			CategoryTitle: categoryTitle,
		})
	}
	if err := rows.Err(); err != nil {
		logger.Warn("Failed to iterate tracker rows", "error", err)
		return []storage.TrackerRow{}, nil
	}
	return out, nil
}
