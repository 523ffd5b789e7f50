// Package sqlitestore keeps the terminal client's evergreen expiries in a SQLite file, the way a
// browser keeps them in localStorage.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS expiries (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

const (
	getSQL    = `SELECT value FROM expiries WHERE key = ?`
	upsertSQL = `INSERT INTO expiries (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	deleteSQL = `DELETE FROM expiries WHERE key = ?`
)

const opTimeout = 5 * time.Second

type Store struct {
	db *sql.DB
}

// Open opens or creates the store at dataSourceName. ":memory:" gives a private in-memory
// database.
func Open(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open expiry store: %w", err)
	}
	// one connection keeps ":memory:" databases shared and serialises writers
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create expiry table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var value string
	err := s.db.QueryRowContext(ctx, getSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read expiry %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, upsertSQL, key, value); err != nil {
		return fmt.Errorf("failed to write expiry %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, deleteSQL, key); err != nil {
		return fmt.Errorf("failed to delete expiry %q: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
