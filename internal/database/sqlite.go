package database

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDatabase keeps app state in a single SQLite key-value table
type SQLiteDatabase struct {
	mu   sync.RWMutex
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates a SQLite database
func OpenSQLite(path string) (*SQLiteDatabase, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	sqliteDB := &SQLiteDatabase{
		db:   db,
		path: path,
	}

	if err := sqliteDB.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return sqliteDB, nil
}

func (db *SQLiteDatabase) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_app_state_updated_at ON app_state(updated_at)`,
	}

	for _, query := range queries {
		if _, err := db.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

// Path returns the database file path
func (db *SQLiteDatabase) Path() string {
	return db.path
}

// Close closes the database
func (db *SQLiteDatabase) Close() error {
	return db.db.Close()
}

// SaveAppState saves application state
func (db *SQLiteDatabase) SaveAppState(key, value string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.db.Exec(`
		INSERT OR REPLACE INTO app_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
	`, key, value)
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

// GetAppState retrieves application state
func (db *SQLiteDatabase) GetAppState(key string) (string, bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var value string
	err := db.db.QueryRow("SELECT value FROM app_state WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// DeleteAppState removes a key; removing a missing key is not an error
func (db *SQLiteDatabase) DeleteAppState(key string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := db.db.Exec("DELETE FROM app_state WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Keys returns every stored key, sorted
func (db *SQLiteDatabase) Keys() ([]string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.db.Query("SELECT key FROM app_state ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			continue
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Clear removes all app state
func (db *SQLiteDatabase) Clear() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.db.Exec("DELETE FROM app_state")
	return err
}
