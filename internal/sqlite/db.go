package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the progress schema. The statements are idempotent
// so an existing database can be reopened safely.
func (db *DB) RunMigrations() error {
	migration := `
-- Completed modules (one row per completed module id)
CREATE TABLE IF NOT EXISTS completed_modules (
    module_id TEXT PRIMARY KEY,
    marked_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Bookmarked modules
CREATE TABLE IF NOT EXISTS bookmarked_modules (
    module_id TEXT PRIMARY KEY,
    marked_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Toggle audit log
CREATE TABLE IF NOT EXISTS progress_events (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL CHECK(kind IN ('completed_toggled', 'bookmark_toggled')),
    module_id TEXT NOT NULL,
    marked INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_created ON progress_events(created_at);
`

	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
