// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete swarmdeck configuration.
type Config struct {
	// API configuration for the agent swarm backend
	API APIConfig `toml:"api"`

	// Storage configuration for session persistence
	Storage StorageConfig `toml:"storage"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// APIConfig contains backend connection configuration.
type APIConfig struct {
	// BaseURL is the backend base URL (default: http://localhost:8000)
	BaseURL string `toml:"base_url"`
	// TimeoutSecs is the chat request timeout in seconds (default: 60)
	TimeoutSecs int `toml:"timeout_secs"`
	// HealthIntervalSecs is how often to probe /health in seconds (default: 30)
	HealthIntervalSecs int `toml:"health_interval_secs"`
}

// StorageConfig contains persistence configuration.
type StorageConfig struct {
	// Backend selects the store: "file", "sqlite", or "memory"
	Backend string `toml:"backend"`
	// Dir is the state directory for the file backend (empty = ~/.swarmdeck/state)
	Dir string `toml:"dir"`
	// SQLitePath is the database path for the sqlite backend
	// (empty = ~/.swarmdeck/state.db)
	SQLitePath string `toml:"sqlite_path"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// ShowDebug opens the per-message debug panel by default
	ShowDebug bool `toml:"show_debug"`
	// CompactMode reduces message padding for small terminals
	CompactMode bool `toml:"compact_mode"`
}

// Timeout returns the chat request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSecs) * time.Second
}

// HealthInterval returns the health probe interval as a duration.
func (a APIConfig) HealthInterval() time.Duration {
	return time.Duration(a.HealthIntervalSecs) * time.Second
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:            "http://localhost:8000",
			TimeoutSecs:        60,
			HealthIntervalSecs: 30,
		},
		Storage: StorageConfig{
			Backend: "file",
		},
	}
}

// ConfigDir returns the swarmdeck configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".swarmdeck"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads the configuration from ~/.swarmdeck/config.toml, falling
// back to defaults when the file does not exist. Environment overrides
// are applied either way, then the result is validated.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := loadTOML(cfg, path); err != nil {
				return nil, err
			}
		}
	}

	cfg.ApplyEnvOverrides()
	fillDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := loadTOML(cfg, path); err != nil {
		return nil, err
	}

	cfg.ApplyEnvOverrides()
	fillDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

func fillDefaults(cfg *Config) {
	def := Default()
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = def.API.BaseURL
	}
	if cfg.API.TimeoutSecs == 0 {
		cfg.API.TimeoutSecs = def.API.TimeoutSecs
	}
	if cfg.API.HealthIntervalSecs == 0 {
		cfg.API.HealthIntervalSecs = def.API.HealthIntervalSecs
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = def.Storage.Backend
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - SWARMDECK_API_URL: overrides api.base_url
//   - SWARMDECK_TIMEOUT_SECS: overrides api.timeout_secs
//   - SWARMDECK_HEALTH_INTERVAL_SECS: overrides api.health_interval_secs
//   - SWARMDECK_STORAGE: overrides storage.backend
//   - SWARMDECK_STATE_DIR: overrides storage.dir
//   - SWARMDECK_DEBUG: set to "1" or "true" to open debug panels by default
func (c *Config) ApplyEnvOverrides() {
	if u := os.Getenv("SWARMDECK_API_URL"); u != "" {
		c.API.BaseURL = u
	}
	if secs := os.Getenv("SWARMDECK_TIMEOUT_SECS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			c.API.TimeoutSecs = n
		}
	}
	if secs := os.Getenv("SWARMDECK_HEALTH_INTERVAL_SECS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			c.API.HealthIntervalSecs = n
		}
	}
	if backend := os.Getenv("SWARMDECK_STORAGE"); backend != "" {
		c.Storage.Backend = backend
	}
	if dir := os.Getenv("SWARMDECK_STATE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if debug := os.Getenv("SWARMDECK_DEBUG"); debug != "" {
		c.UI.ShowDebug = debug == "1" || strings.ToLower(debug) == "true"
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "api.base_url",
			Message: fmt.Sprintf("invalid URL '%s'", c.API.BaseURL),
		})
	}
	if c.API.TimeoutSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "api.timeout_secs",
			Message: "must not be negative",
		})
	}
	if c.API.HealthIntervalSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "api.health_interval_secs",
			Message: "must not be negative",
		})
	}

	validBackends := map[string]bool{"file": true, "sqlite": true, "memory": true}
	if !validBackends[strings.ToLower(c.Storage.Backend)] {
		errs = append(errs, ValidationError{
			Field:   "storage.backend",
			Message: fmt.Sprintf("invalid backend '%s', must be one of: file, sqlite, memory", c.Storage.Backend),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
