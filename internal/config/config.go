// Package config resolves runtime settings from environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Environment variable names.
const (
	EnvCatalog   = "CHARTWISE_CATALOG"
	EnvDB        = "CHARTWISE_DB"
	EnvLogEvents = "CHARTWISE_LOG_EVENTS"
)

// Config holds the settings shared by every command.
type Config struct {
	// CatalogPath is a YAML catalog that replaces the built-in one.
	CatalogPath string
	// DBPath enables the SQLite catalog store when set.
	DBPath string
	// LogEvents writes one slog record per answered query to stderr.
	LogEvents bool
}

// Default returns a Config that uses the built-in catalog and logs nothing.
func Default() Config {
	return Config{}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or malformed values.
func Load() Config {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) Config {
	cfg := Default()

	if v := getenv(EnvCatalog); v != "" {
		cfg.CatalogPath = v
	}
	if v := getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := getenv(EnvLogEvents); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogEvents = b
		}
	}
	return cfg
}

// DefaultDBPath returns ~/.chartwise/catalog.db, used by the catalog
// store commands when no path is configured.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chartwise", "catalog.db"), nil
}

// StorePath returns the configured store path or the default one.
func (c Config) StorePath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	return DefaultDBPath()
}
