package database

import (
	"sort"
	"sync"
)

// MemoryDatabase is a map-backed DB. Nothing survives the process.
type MemoryDatabase struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewMemory returns an empty in-memory database
func NewMemory() *MemoryDatabase {
	return &MemoryDatabase{values: make(map[string]string)}
}

func (db *MemoryDatabase) GetAppState(key string) (string, bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if db.closed {
		return "", false, ErrClosed
	}
	v, ok := db.values[key]
	return v, ok, nil
}

func (db *MemoryDatabase) SaveAppState(key, value string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.closed {
		return ErrClosed
	}
	db.values[key] = value
	return nil
}

func (db *MemoryDatabase) DeleteAppState(key string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.closed {
		return ErrClosed
	}
	delete(db.values, key)
	return nil
}

// Keys returns the stored keys in sorted order
func (db *MemoryDatabase) Keys() ([]string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	keys := make([]string, 0, len(db.values))
	for k := range db.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Clear removes all app state
func (db *MemoryDatabase) Clear() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.values = make(map[string]string)
	return nil
}

func (db *MemoryDatabase) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.closed = true
	return nil
}
