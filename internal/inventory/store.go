// Copyright Johnny Jacob, 2026. All rights reserved.

// Package inventory builds a SQLite index of the pages in a vault and the
// wiki links and asset references they contain. The index is a survey
// tool: it answers "what does this vault link to, and is anything broken"
// without touching the notes themselves.
package inventory

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS pages (
	id   INTEGER PRIMARY KEY,
	path TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS links (
	id        INTEGER PRIMARY KEY,
	source_id INTEGER NOT NULL REFERENCES pages(id) ON DELETE CASCADE,
	target    TEXT NOT NULL,
	alias     TEXT NOT NULL DEFAULT '',
	kind      TEXT NOT NULL CHECK (kind IN ('wikilink', 'asset'))
);

CREATE INDEX IF NOT EXISTS idx_links_target ON links(target);
CREATE INDEX IF NOT EXISTS idx_links_source ON links(source_id);
`

// Store manages the inventory SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the inventory database at dbPath, creating parent
// directories and the schema as needed.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	s := &Store{db: db}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
