/*
Package prefs persists small named values in a SQLite database, filling
the role of the device's non-volatile preference storage.
*/
package prefs

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a durable name-to-value table.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the store backed by the given file.
func NewStore(file string) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS preference (name TEXT PRIMARY KEY NOT NULL, value INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Uint32 returns the named value, or zero when it has never been set.
func (s *Store) Uint32(name string) (uint32, error) {
	var value int64
	switch err := s.db.QueryRow("SELECT value FROM preference WHERE name = ?", name).Scan(&value); err {
	case sql.ErrNoRows:
		return 0, nil
	case nil:
		return uint32(value), nil
	default:
		return 0, err
	}
}

// PutUint32 stores the named value, replacing any previous one.
func (s *Store) PutUint32(name string, value uint32) error {
	if _, err := s.db.Exec("INSERT OR REPLACE INTO preference (name, value) VALUES (?, ?)", name, value); err != nil {
		return err
	}
	return nil
}
