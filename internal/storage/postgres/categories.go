package postgres

import (
	"strings"

	"github.com/nvoronova/trackerd/internal/logger"
	"github.com/nvoronova/trackerd/internal/storage"
)

func persistErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &storage.PersistenceError{Op: op, Err: err}
}

func (s *Store) AddCategory(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil
	}

	_, err := s.db.Exec(`INSERT INTO categories (title) VALUES ($1)`, trimmed)
	return persistErr("add category", err)
}

func (s *Store) DeleteCategory(title string) error {
	res, err := s.db.Exec(`DELETE FROM categories WHERE title = $1`, title)
	if err != nil {
		return persistErr("delete category", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return persistErr("delete category", err)
	}
	if rows == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) FetchCategoryTitles() []string {
	rows, err := s.db.Query(`SELECT title FROM categories ORDER BY title ASC`)
	if err != nil {
		logger.Warn("Failed to fetch category titles", "error", err)
		return []string{}
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			logger.Warn("Failed to scan category title", "error", err)
			return []string{}
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		logger.Warn("Failed to iterate category titles", "error", err)
		return []string{}
	}
	return titles
}

func (s *Store) FindOrCreateCategory(title string) error {
	_, err := s.db.Exec(`INSERT INTO categories (title) VALUES ($1) ON CONFLICT (title) DO NOTHING`, title)
	return persistErr("find or create category", err)
}
