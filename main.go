package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/haryoiro/ytfront/internal/config"
	"github.com/haryoiro/ytfront/internal/constants"
	"github.com/haryoiro/ytfront/internal/database"
	"github.com/haryoiro/ytfront/internal/logger"
	"github.com/haryoiro/ytfront/internal/structures"
	"github.com/haryoiro/ytfront/internal/systems"
	"github.com/haryoiro/ytfront/internal/ui"
	"github.com/haryoiro/ytfront/internal/version"
)

const banner = `
            __    ____                 __
  __  __   / /_  / __/_____ ____   ____  / /_
 / / / /  / __/ / /_ / ___// __ \ / __ \/ __/
/ /_/ /  / /_  / __// /   / /_/ // / / / /_
\__, /   \__/ /_/  /_/    \____//_/ /_/\__/
/____/            video catalog in your terminal`

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showFiles   = flag.Bool("files", false, "Show file locations")
		showVersion = flag.Bool("version", false, "Show version")
		debugMode   = flag.Bool("debug", false, "Enable debug logging")
		catalogSrc  = flag.String("catalog", "", "Catalog file or http(s) URL (overrides catalog_source)")
		startRoute  = flag.String("route", "", "Route to open at startup, e.g. #/video/<id>")
		clearState  = flag.Bool("clear-state", false, "Delete all persisted likes, subscriptions, comments and profile data")
	)

	flag.Parse()

	if *showHelp {
		printHelp()
		return
	}

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	configDir, dataDir := getDirectories()
	configPath := filepath.Join(configDir, constants.ConfigFileName)
	logFile := filepath.Join(dataDir, constants.LogFileName)

	if *showFiles {
		fmt.Printf("# %s file locations:\n", constants.AppName)
		fmt.Printf("  Config: %s\n", configPath)
		fmt.Printf("  Data:   %s\n", dataDir)
		fmt.Printf("  Logs:   %s\n", logFile)
		return
	}

	if err := initLogging(logFile, *debugMode); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.CloseLogger()

	cfg := loadConfiguration(configPath)
	db := initializeDatabase(cfg.Storage, dataDir)

	appSystems := systems.New(cfg, db, *catalogSrc, *startRoute)
	defer func() {
		logger.Debug("Stopping all application systems...")
		if err := appSystems.Stop(); err != nil {
			logger.Warn("Shutdown: %v", err)
		}
	}()

	if *clearState {
		runClearState(appSystems)
		return
	}

	logger.Debug("Starting UI")
	if err := ui.Run(appSystems); err != nil {
		logger.Error("Application error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	logger.Info("%s shutdown complete", constants.AppName)
}

func printHelp() {
	fmt.Println(banner)
	fmt.Printf("\nUsage: %s [OPTIONS]\n", constants.AppName)
	fmt.Println("\nOptions:")
	flag.PrintDefaults()
	fmt.Println("\nKeyboard shortcuts (defaults, see config.toml):")
	fmt.Println("  Global:")
	fmt.Println("    Ctrl+C/D      - Quit")
	fmt.Println("    Tab/Shift+Tab - Switch pane")
	fmt.Println("    /             - Search")
	fmt.Println("    n             - Notifications")
	fmt.Println("    p             - Edit profile")
	fmt.Println("    h             - Home (clears category and search)")
	fmt.Println("")
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k ↓/j ←/→   - Move selection")
	fmt.Println("    Enter or l    - Open")
	fmt.Println("    Esc/Backspace - Go back")
	fmt.Println("")
	fmt.Println("  Video page:")
	fmt.Println("    +             - Like")
	fmt.Println("    -             - Dislike")
	fmt.Println("    s             - Subscribe")
	fmt.Println("    c             - Comment")
	fmt.Println("\nDebug options:")
	fmt.Println("  --debug     - Enable debug logging to file")
}

func getDirectories() (config, data string) {
	// Use XDG Base Directory specification
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		config = filepath.Join(xdgConfig, constants.AppName)
	} else if home, err := os.UserHomeDir(); err == nil {
		config = filepath.Join(home, ".config", constants.AppName)
	}

	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		data = filepath.Join(xdgData, constants.AppName)
	} else if home, err := os.UserHomeDir(); err == nil {
		data = filepath.Join(home, ".local", "share", constants.AppName)
	}

	os.MkdirAll(config, 0755)
	os.MkdirAll(data, 0755)

	return
}

func initLogging(logFile string, debugMode bool) error {
	logLevel := logger.INFO
	if debugMode {
		logLevel = logger.DEBUG
	}

	if err := logger.InitLogger(logFile, logLevel, debugMode); err != nil {
		return err
	}

	logger.Info("Logger initialized with debug mode: %v", debugMode)
	return nil
}

func loadConfiguration(configPath string) *structures.Config {
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		logger.Warn("Failed to load config, using defaults: %v", err)
		return config.Default()
	}
	logger.Debug("Configuration loaded from: %s", configPath)
	return cfg
}

func initializeDatabase(storage structures.Storage, dataDir string) database.DB {
	db, err := database.Open(storage, dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Fatal("Failed to open %q storage: %v", storage.Backend, err)
	}
	logger.Debug("Storage backend %q opened", storage.Backend)
	return db
}

func runClearState(s *systems.Systems) {
	fmt.Println("⚠️  WARNING: This will delete all persisted state:")
	fmt.Println("  - Likes, dislikes and vote counts")
	fmt.Println("  - Subscriptions")
	fmt.Println("  - Comments")
	fmt.Println("  - Notification read status and profile")
	fmt.Print("\nAre you sure you want to continue? (y/N): ")

	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "y" && confirm != "Y" {
		fmt.Println("Clearing cancelled.")
		return
	}

	n, err := s.ClearState()
	if err != nil {
		fmt.Printf("Failed to clear state: %v\n", err)
		return
	}
	logger.Info("Cleared %d persisted keys", n)
	fmt.Printf("✓ Removed %d stored entries\n", n)
	fmt.Println("Note: the configuration file was preserved")
}
