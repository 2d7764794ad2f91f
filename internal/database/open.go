package database

import (
	"fmt"
	"path/filepath"

	"github.com/haryoiro/ytfront/internal/constants"
	"github.com/haryoiro/ytfront/internal/structures"
)

// Maintainer is implemented by backends that can enumerate and wipe state
type Maintainer interface {
	Keys() ([]string, error)
	Clear() error
}

// Open selects a backend from the storage configuration.
// An empty backend name means SQLite in dataDir.
func Open(cfg structures.Storage, dataDir string) (DB, error) {
	switch cfg.Backend {
	case "", constants.BackendSQLite:
		path := cfg.Path
		if path == "" {
			path = filepath.Join(dataDir, constants.DBFileName)
		}
		return OpenSQLite(path)
	case constants.BackendMemory:
		return NewMemory(), nil
	case constants.BackendRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("redis backend requires storage.redis_addr")
		}
		return OpenRedis(RedisOptions{
			Addr:    cfg.RedisAddr,
			Prefix:  cfg.RedisPrefix,
			Timeout: constants.StoreCallTimeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

var (
	_ DB         = (*SQLiteDatabase)(nil)
	_ DB         = (*MemoryDatabase)(nil)
	_ DB         = (*RedisDatabase)(nil)
	_ Maintainer = (*SQLiteDatabase)(nil)
	_ Maintainer = (*MemoryDatabase)(nil)
	_ Maintainer = (*RedisDatabase)(nil)
)
