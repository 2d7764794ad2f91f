package database

import "errors"

// ErrClosed is returned by backends after Close
var ErrClosed = errors.New("database closed")

// DB is the key-value capability behind the persistent store.
// A missing key is reported as ok == false with a nil error.
type DB interface {
	GetAppState(key string) (value string, ok bool, err error)
	SaveAppState(key, value string) error
	DeleteAppState(key string) error
	Close() error
}
