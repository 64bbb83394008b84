package storage

import (
	"strings"

	"github.com/nvoronova/trackerd/internal/logger"
)

// AddCategory creates a new category with the trimmed title. An empty title
// after trimming is a silent no-op.
func (s *SQLiteStore) AddCategory(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil
	}

	_, err := s.db.Exec(`INSERT INTO categories (title) VALUES (?)`, trimmed)
	return persistErr("add category", err)
}

// DeleteCategory removes the category record. Trackers are not cascaded;
// reassigning them is the caller's responsibility.
func (s *SQLiteStore) DeleteCategory(title string) error {
	res, err := s.db.Exec(`DELETE FROM categories WHERE title = ?`, title)
	if err != nil {
		return persistErr("delete category", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return persistErr("delete category", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// FetchCategoryTitles returns all category titles in ascending ordinal
// order. On read failure it degrades to an empty list.
func (s *SQLiteStore) FetchCategoryTitles() []string {
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

// FindOrCreateCategory resolves a title by exact match, creating the
// category when it does not exist yet.
func (s *SQLiteStore) FindOrCreateCategory(title string) error {
	_, err := s.db.Exec(`INSERT INTO categories (title) VALUES (?) ON CONFLICT(title) DO NOTHING`, title)
	return persistErr("find or create category", err)
}
