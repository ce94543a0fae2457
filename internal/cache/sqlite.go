package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS cache_entries (
	namespace TEXT NOT NULL,
	key       TEXT NOT NULL,
	value     BLOB NOT NULL,
	PRIMARY KEY (namespace, key)
)`

// SQLiteStore keeps every cache layer in one SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// modernc's driver serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable wal: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Namespace returns a Cache whose keys live in their own namespace
func (s *SQLiteStore) Namespace(name string) *SQLiteCache {
	return &SQLiteCache{db: s.db, namespace: name}
}

// SQLiteCache is one namespace of a SQLiteStore
type SQLiteCache struct {
	db        *sql.DB
	namespace string
}

// Get retrieves a value from the database
func (c *SQLiteCache) Get(key string) ([]byte, bool) {
	var value []byte
	err := c.db.QueryRow(
		`SELECT value FROM cache_entries WHERE namespace = ? AND key = ?`,
		c.namespace, key,
	).Scan(&value)
	if err != nil {
		return nil, false
	}
	return value, true
}

// Set inserts or replaces a value in one statement
func (c *SQLiteCache) Set(key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := c.db.Exec(
		`INSERT INTO cache_entries (namespace, key, value) VALUES (?, ?, ?)
		 ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value`,
		c.namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("store %s/%s: %w", c.namespace, key, err)
	}
	return nil
}

// Delete removes a value from the database
func (c *SQLiteCache) Delete(key string) error {
	_, err := c.db.Exec(`DELETE FROM cache_entries WHERE namespace = ? AND key = ?`, c.namespace, key)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("delete %s/%s: %w", c.namespace, key, err)
	}
	return nil
}

// Clear removes every value in the namespace
func (c *SQLiteCache) Clear() error {
	if _, err := c.db.Exec(`DELETE FROM cache_entries WHERE namespace = ?`, c.namespace); err != nil {
		return fmt.Errorf("clear %s: %w", c.namespace, err)
	}
	return nil
}
