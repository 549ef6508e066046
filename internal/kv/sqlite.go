package kv

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteStoreName = "pantry.db"

// sqliteSchema holds the single kv table. Keys are unique; values are the
// UTF-8 text the adapter hands down.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLite is a KV backend persisted in a SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the SQLite-backed store under dataDir.
func OpenSQLite(dataDir string) (*SQLite, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, sqliteStoreName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Get returns the stored text for key and whether the key exists.
func (s *SQLite) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query key %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores text under key, replacing any previous value.
func (s *SQLite) Set(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}

// Remove deletes the key. Removing an absent key is not an error.
func (s *SQLite) Remove(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}

// Clear wipes the entire namespace.
func (s *SQLite) Clear() error {
	if _, err := s.db.Exec("DELETE FROM kv"); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	return nil
}

// Keys enumerates every key currently present.
func (s *SQLite) Keys() ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM kv")
	if err != nil {
		return nil, fmt.Errorf("enumerate keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("enumerate keys: %w", err)
	}
	return keys, nil
}

// Close closes the database. Idempotent.
func (s *SQLite) Close() error {
	return s.db.Close()
}
