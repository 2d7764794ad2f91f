package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/haryoiro/ytfront/internal/constants"
	"github.com/haryoiro/ytfront/internal/structures"
)

// Load loads the configuration from a TOML file. Keys missing from the
// file keep their defaults.
func Load(path string) (*structures.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrCreate loads path, writing the defaults there first when the file
// does not exist yet.
func LoadOrCreate(path string) (*structures.Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg = Default()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if err := Save(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to a TOML file
func Save(cfg *structures.Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Default returns the default configuration
func Default() *structures.Config {
	return &structures.Config{
		CatalogSource: constants.DefaultCatalog,
		AnonymousName: constants.AnonymousName,
		Storage: structures.Storage{
			Backend:     constants.BackendSQLite,
			RedisPrefix: "ytfront:",
		},
		Theme: structures.Theme{
			Foreground: "#c0caf5", // Tokyo Night foreground
			Selected:   "#7aa2f7", // Tokyo Night blue
			Active:     "#9ece6a", // Tokyo Night green
			Unread:     "#f7768e", // Tokyo Night red
			Border:     "#3b4261", // Tokyo Night border
			Accent:     "#e0af68", // Tokyo Night yellow
		},
		KeyBindings: structures.KeyBindings{
			Quit: []string{"ctrl+c", "ctrl+d"},

			// Navigation
			MoveUp:      []string{"up", "k"},
			MoveDown:    []string{"down", "j"},
			Select:      []string{"enter", "l"},
			Back:        []string{"esc", "backspace"},
			NextSection: "tab",
			PrevSection: "shift+tab",
			Home:        "h",

			// Header
			Search:        "/",
			Notifications: "n",
			Profile:       "p",

			// Video page
			Like:      "+",
			Dislike:   "-",
			Subscribe: "s",
			Comment:   "c",
		},
	}
}
