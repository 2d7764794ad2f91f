package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/haryoiro/ytfront/internal/structures"
)

func openBackends(t *testing.T) map[string]DB {
	t.Helper()

	sqliteDB, err := OpenSQLite(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error: %v", err)
	}
	t.Cleanup(func() { sqliteDB.Close() })

	return map[string]DB{
		"sqlite": sqliteDB,
		"memory": NewMemory(),
	}
}

func TestDB_SaveGetDelete(t *testing.T) {
	for name, db := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := db.GetAppState("missing"); ok || err != nil {
				t.Fatalf("GetAppState(missing) = ok %v, err %v; expected not found", ok, err)
			}

			if err := db.SaveAppState("like_a", "true"); err != nil {
				t.Fatalf("SaveAppState() error: %v", err)
			}
			if err := db.SaveAppState("like_a", "false"); err != nil {
				t.Fatalf("SaveAppState() overwrite error: %v", err)
			}

			v, ok, err := db.GetAppState("like_a")
			if err != nil || !ok || v != "false" {
				t.Errorf("GetAppState(like_a) = %q, %v, %v; expected \"false\", true, nil", v, ok, err)
			}

			if err := db.DeleteAppState("like_a"); err != nil {
				t.Fatalf("DeleteAppState() error: %v", err)
			}
			if err := db.DeleteAppState("like_a"); err != nil {
				t.Errorf("DeleteAppState() on missing key error: %v", err)
			}
			if _, ok, _ := db.GetAppState("like_a"); ok {
				t.Error("key still present after DeleteAppState()")
			}
		})
	}
}

func TestDB_KeysAndClear(t *testing.T) {
	for name, db := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			m := db.(Maintainer)
			for _, k := range []string{"b", "a", "c"} {
				if err := db.SaveAppState(k, "1"); err != nil {
					t.Fatalf("SaveAppState(%s) error: %v", k, err)
				}
			}

			keys, err := m.Keys()
			if err != nil {
				t.Fatalf("Keys() error: %v", err)
			}
			if len(keys) != 3 || keys[0] != "a" || keys[2] != "c" {
				t.Errorf("Keys() = %v, expected [a b c]", keys)
			}

			if err := m.Clear(); err != nil {
				t.Fatalf("Clear() error: %v", err)
			}
			keys, _ = m.Keys()
			if len(keys) != 0 {
				t.Errorf("Keys() after Clear() = %v, expected none", keys)
			}
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error: %v", err)
	}
	if err := db.SaveAppState("yt_user", `{"name":"Ann"}`); err != nil {
		t.Fatalf("SaveAppState() error: %v", err)
	}
	db.Close()

	db, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer db.Close()

	v, ok, err := db.GetAppState("yt_user")
	if err != nil || !ok || v != `{"name":"Ann"}` {
		t.Errorf("GetAppState() after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestMemory_ClosedReturnsError(t *testing.T) {
	db := NewMemory()
	db.Close()

	if err := db.SaveAppState("k", "v"); err != ErrClosed {
		t.Errorf("SaveAppState() after Close = %v, expected ErrClosed", err)
	}
	if _, _, err := db.GetAppState("k"); err != ErrClosed {
		t.Errorf("GetAppState() after Close = %v, expected ErrClosed", err)
	}
}

func TestRedis_UnreachableServerReturnsErrors(t *testing.T) {
	db := OpenRedis(RedisOptions{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	defer db.Close()

	if _, _, err := db.GetAppState("k"); err == nil {
		t.Error("GetAppState() against unreachable server returned nil error")
	}
	if err := db.SaveAppState("k", "v"); err == nil {
		t.Error("SaveAppState() against unreachable server returned nil error")
	}
}

func TestNewRedisWithClient(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	db := NewRedisWithClient(client, "test:", 0)
	defer db.Close()

	if db.timeout != 2*time.Second {
		t.Errorf("timeout = %v, expected the 2s default", db.timeout)
	}
	if got := db.key("like_a"); got != "test:like_a" {
		t.Errorf("key(like_a) = %q, expected test:like_a", got)
	}
	if err := db.DeleteAppState("like_a"); err == nil {
		t.Error("DeleteAppState() against unreachable server returned nil error")
	}
	if _, err := db.Keys(); err == nil {
		t.Error("Keys() against unreachable server returned nil error")
	}
}

func TestOpen_SelectsBackend(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     structures.Storage
		wantErr bool
	}{
		{"default is sqlite", structures.Storage{}, false},
		{"memory", structures.Storage{Backend: "memory"}, false},
		{"redis without addr", structures.Storage{Backend: "redis"}, true},
		{"redis", structures.Storage{Backend: "redis", RedisAddr: "127.0.0.1:1"}, false},
		{"unknown", structures.Storage{Backend: "etcd"}, true},
	}

	for _, test := range tests {
		db, err := Open(test.cfg, dir)
		if (err != nil) != test.wantErr {
			t.Errorf("Open(%s) error = %v, wantErr %v", test.name, err, test.wantErr)
		}
		if db != nil {
			db.Close()
		}
	}
}
