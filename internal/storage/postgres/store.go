package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/nvoronova/trackerd/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
	title TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS trackers (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	emoji TEXT NOT NULL DEFAULT '',
	color BYTEA,
	schedule BYTEA,
	category_title TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_trackers_category ON trackers(category_title);

CREATE TABLE IF NOT EXISTS records (
	tracker_id TEXT NOT NULL REFERENCES trackers(id) ON DELETE CASCADE,
	day TEXT NOT NULL,
	completed_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (tracker_id, day)
);
CREATE INDEX IF NOT EXISTS idx_records_day ON records(day);
`

// Store is the PostgreSQL Provider backend, selected when the config value
// is a postgres:// connection string. Connection strings with embedded
// credentials are rejected before the store is ever constructed.
type Store struct {
	connStr string
	db      *sql.DB
}

func New(connStr string) *Store {
	return &Store{connStr: connStr}
}

func (s *Store) Init() error {
	if err := s.Load(); err != nil {
		return err
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if storage.HasEmbeddedCredentials(s.connStr) {
		return fmt.Errorf("connection string must not contain a password; use the keyring or environment")
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.connStr
}
