// Package store is the JSON layer over a database.DB. Nothing here returns
// a storage failure to the caller except Read, which exists for the one
// consumer that branches on it.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/haryoiro/ytfront/internal/database"
	"github.com/haryoiro/ytfront/internal/logger"
)

// ErrUnavailable is reported by Read when the store has no backend
var ErrUnavailable = errors.New("store unavailable")

// Store encodes values as JSON and swallows backend failures
type Store struct {
	db database.DB
}

// New wraps db. A nil db yields a store where every read misses and
// every write is dropped.
func New(db database.DB) *Store {
	return &Store{db: db}
}

// Read decodes the value stored under key. found is false with a nil error
// when the key is absent; err is set for backend failures and malformed JSON.
func Read[T any](s *Store, key string) (value T, found bool, err error) {
	if s == nil || s.db == nil {
		return value, false, ErrUnavailable
	}

	raw, ok, err := s.db.GetAppState(key)
	if err != nil {
		return value, false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return value, false, nil
	}

	var decoded T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return value, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return decoded, true, nil
}

// Get returns the value stored under key, or def when it is absent or
// cannot be read.
func Get[T any](s *Store, key string, def T) T {
	v, found, err := Read[T](s, key)
	if err != nil {
		logger.Debug("store: %v, using default", err)
		return def
	}
	if !found {
		return def
	}
	return v
}

// Set writes value under key as JSON
func (s *Store) Set(key string, value any) {
	if s == nil || s.db == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		logger.Debug("store: encode %s: %v", key, err)
		return
	}
	if err := s.db.SaveAppState(key, string(data)); err != nil {
		logger.Debug("store: write %s: %v", key, err)
	}
}

// Remove deletes key on a best-effort basis
func (s *Store) Remove(key string) {
	if s == nil || s.db == nil {
		return
	}
	if err := s.db.DeleteAppState(key); err != nil {
		logger.Debug("store: remove %s: %v", key, err)
	}
}

// Subscriptions returns the global list of subscribed author names.
// A missing list is empty; an unreadable one is an error.
func (s *Store) Subscriptions() ([]string, error) {
	list, _, err := Read[[]string](s, SubscriptionsKey)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// SetSubscriptions writes the global list, dropping duplicates while
// keeping first-seen order.
func (s *Store) SetSubscriptions(authors []string) {
	seen := make(map[string]bool, len(authors))
	list := make([]string, 0, len(authors))
	for _, a := range authors {
		if seen[a] {
			continue
		}
		seen[a] = true
		list = append(list, a)
	}
	s.Set(SubscriptionsKey, list)
}
