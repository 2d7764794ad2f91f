package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `catalog_source = "https://example.com/dataset.json"

[storage]
backend = "redis"
redis_addr = "localhost:6379"

[key_bindings]
like = "L"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.CatalogSource != "https://example.com/dataset.json" {
		t.Errorf("CatalogSource = %q", cfg.CatalogSource)
	}
	if cfg.Storage.Backend != "redis" || cfg.Storage.RedisAddr != "localhost:6379" {
		t.Errorf("Storage = %+v", cfg.Storage)
	}
	if cfg.Storage.RedisPrefix != "ytfront:" {
		t.Errorf("RedisPrefix = %q, expected default", cfg.Storage.RedisPrefix)
	}
	if cfg.KeyBindings.Like != "L" || cfg.KeyBindings.Dislike != "-" {
		t.Errorf("Like/Dislike = %q/%q", cfg.KeyBindings.Like, cfg.KeyBindings.Dislike)
	}
	if cfg.AnonymousName != "Anonymous" {
		t.Errorf("AnonymousName = %q, expected default", cfg.AnonymousName)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("catalog_source = [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil for invalid TOML")
	}
}

func TestLoadOrCreate_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("LoadOrCreate() = %+v, expected defaults", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of written defaults: %v", err)
	}
	if !reflect.DeepEqual(again, Default()) {
		t.Errorf("written defaults do not round-trip: %+v", again)
	}
}
