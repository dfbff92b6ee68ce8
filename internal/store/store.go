// Package store persists the catalog in SQLite. The Store type implements
// the catalog persistence contract; users, tokens, and settings are plain
// package functions since only the HTTP layer touches them.
package store

import "database/sql"

// Store provides catalog persistence over the items and claims tables.
type Store struct {
	db *sql.DB
}

// New creates a Store over an open database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}
