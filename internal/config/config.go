// Package config loads the splitlog configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

const (
	// HomeEnv overrides the splitlog home directory.
	HomeEnv = "SPLITLOG_HOME"
	// FileName is the config file inside the home directory.
	FileName = "config.toml"
)

// Config represents the flat splitlog configuration
type Config struct {
	DataDir     string `toml:"data_dir"`      // where the database or JSON files live
	Backend     string `toml:"backend"`       // "sqlite" or "json"
	LogLevel    string `toml:"log_level"`     // debug, info, warn, error, trace
	LogFile     string `toml:"log_file"`      // empty disables file logging
	LogToStderr bool   `toml:"log_to_stderr"` // also log to stderr when LogFile is set
	NoColor     bool   `toml:"no_color"`
	CacheSizeMB int    `toml:"cache_size_mb"`
}

// Home returns the splitlog home directory: $SPLITLOG_HOME, or ~/.splitlog.
func Home() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".splitlog"), nil
}

// Default returns the configuration used when no file exists.
func Default(home string) *Config {
	return &Config{
		DataDir:     filepath.Join(home, "data"),
		Backend:     BackendSQLite,
		LogLevel:    "warn",
		CacheSizeMB: 1,
	}
}

// LoadConfig reads config.toml from home. A missing file yields the defaults;
// keys absent from the file keep their default values.
func LoadConfig(home string) (*Config, error) {
	cfg := Default(home)

	path := filepath.Join(home, FileName)
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the backend and normalises values.
func (c *Config) Validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case BackendSQLite, BackendJSON:
	default:
		return fmt.Errorf("invalid backend %q (expected %s or %s)", c.Backend, BackendSQLite, BackendJSON)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.CacheSizeMB < 1 {
		c.CacheSizeMB = 1
	}
	return nil
}

// SaveConfig writes config.toml to home
func SaveConfig(home string, cfg *Config) error {
	if err := os.MkdirAll(home, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", home, err)
	}

	f, err := os.Create(filepath.Join(home, FileName))
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return nil
}
