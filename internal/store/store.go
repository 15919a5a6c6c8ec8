// Package store manages the embedded SQLite database: schema lifecycle
// and dependency-ordered bulk loading of generated datasets.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Open returns a connection to the SQLite database at path with foreign
// key enforcement on. The pool is capped at a single connection: there is
// exactly one writer and no concurrent reader in this tool's usage.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return db, nil
}
