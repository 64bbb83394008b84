package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
	title TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS trackers (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	emoji TEXT NOT NULL DEFAULT '',
	color BLOB,
	schedule BLOB,
	-- intentionally not a foreign key: deleting a category orphans its
	-- trackers instead of cascading or blocking
	category_title TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trackers_category ON trackers(category_title);

CREATE TABLE IF NOT EXISTS records (
	tracker_id TEXT NOT NULL REFERENCES trackers(id) ON DELETE CASCADE,
	day TEXT NOT NULL,
	completed_at TEXT NOT NULL,
	PRIMARY KEY (tracker_id, day)
);
CREATE INDEX IF NOT EXISTS idx_records_day ON records(day);
`

// SQLiteStore is the default Provider backend, a single local database file.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'trackerd init' first")
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) open() (*sql.DB, error) {
	// foreign_keys is a per-connection pragma; setting it through the DSN
	// makes the records cascade apply on every pooled connection.
	db, err := sql.Open("sqlite", s.path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the underlying handle for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
