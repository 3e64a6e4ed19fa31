// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "tasklist"

	// BackendJSON stores the snapshot in a JSON file.
	BackendJSON = "json"

	// BackendSQLite stores the snapshot in a SQLite database.
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned when TASKLIST_BACKEND names no known backend
var ErrUnknownBackend = errors.New("unknown storage backend")

// Config holds all application configuration
type Config struct {
	// DataDir holds the store file and the REPL history.
	DataDir string

	// Backend is BackendJSON or BackendSQLite.
	Backend string

	// Key is the storage key the task list is saved under.
	Key string

	// LogLevel is a zerolog level name.
	LogLevel string

	// Env is "development" or "production".
	Env string
}

// Load reads envFile (if it exists) into the process environment, then builds
// a Config from environment variables. Variables already set win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		DataDir:  getEnv("TASKLIST_DATA_DIR", DefaultDataDir()),
		Backend:  strings.ToLower(getEnv("TASKLIST_BACKEND", BackendJSON)),
		Key:      getEnv("TASKLIST_KEY", "todos"),
		LogLevel: getEnv("TASKLIST_LOG_LEVEL", "info"),
		Env:      getEnv("TASKLIST_ENV", "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownBackend, c.Backend, BackendJSON, BackendSQLite)
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

// StorePath returns the path of the backing store file for the configured backend
func (c *Config) StorePath() string {
	if c.Backend == BackendSQLite {
		return filepath.Join(c.DataDir, "tasks.sqlite")
	}
	return filepath.Join(c.DataDir, "tasks.json")
}

// HistoryPath returns the path of the REPL history file
func (c *Config) HistoryPath() string {
	return filepath.Join(c.DataDir, "history")
}

// EnsureDir creates the data directory if it doesn't exist.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.DataDir, 0700)
}

// DefaultDataDir returns the default data directory.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
