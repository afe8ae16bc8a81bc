// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreSQLite   = "sqlite"
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Defaults used when neither the config file, the environment nor a flag sets a value.
const (
	DefaultStore     = StoreSQLite
	DefaultStorePath = ".placement/placement.db"
	DefaultLogLevel  = "info"
)

// Environment variables read by FromEnv.
const (
	EnvStore       = "PLACEMENT_STORE"
	EnvStorePath   = "PLACEMENT_STORE_PATH"
	EnvDatabaseURL = "DATABASE_URL"
	EnvCatalog     = "PLACEMENT_CATALOG"
	EnvTimezone    = "PLACEMENT_TIMEZONE"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFile     = "LOG_FILE"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Storage
	Store       string `json:"store,omitempty" yaml:"store,omitempty"`               // sqlite, memory or postgres
	StorePath   string `json:"store_path,omitempty" yaml:"store_path,omitempty"`     // SQLite database file
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty"` // PostgreSQL connection URL

	// Inputs
	Catalog string `json:"catalog,omitempty" yaml:"catalog,omitempty"` // Path to the job catalog (JSON or YAML)

	// Digest dates are calendar days in this IANA zone; empty means local time
	Timezone string `json:"timezone,omitempty" yaml:"timezone,omitempty"`

	// Logging
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	LogFile  string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// FromEnv returns the configuration set through environment variables.
func FromEnv() Config {
	return Config{
		Store:       os.Getenv(EnvStore),
		StorePath:   os.Getenv(EnvStorePath),
		DatabaseURL: os.Getenv(EnvDatabaseURL),
		Catalog:     os.Getenv(EnvCatalog),
		Timezone:    os.Getenv(EnvTimezone),
		LogLevel:    os.Getenv(EnvLogLevel),
		LogFile:     os.Getenv(EnvLogFile),
	}
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Store:     DefaultStore,
		StorePath: DefaultStorePath,
		LogLevel:  DefaultLogLevel,
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.Store {
	case "", StoreSQLite, StoreMemory, StorePostgres:
	default:
		return fmt.Errorf("config error: unknown store %q (want sqlite, memory or postgres)", c.Store)
	}

	if c.Store == StorePostgres && c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'database_url' is required for the postgres store")
	}

	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("config error: invalid timezone %q: %w", c.Timezone, err)
		}
	}

	// Validate file paths exist (if specified)
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to layer flags over the environment over the config file over the
// built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.StorePath == "" {
		result.StorePath = defaults.StorePath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.Timezone == "" {
		result.Timezone = defaults.Timezone
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFile == "" {
		result.LogFile = defaults.LogFile
	}

	return result
}

// Location returns the zone digest dates are computed in.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
