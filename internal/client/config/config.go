// Package config loads runtime configuration for the DayCast CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
package config

import "time"

// Config holds runtime settings for the DayCast CLI.
type Config struct {
	// APIBaseURL is the scheme://host:port of the DayCast backend.
	APIBaseURL string
	// RequestTimeout bounds every API call.
	RequestTimeout time.Duration
	// DatabasePath locates the local sqlite database for session state and
	// the day cache.
	DatabasePath string

	// AutosaveQuietPeriod is the debounce window for settings edits.
	AutosaveQuietPeriod time.Duration
	// AutosaveSavedWindow is how long the "saved" indicator is shown.
	AutosaveSavedWindow time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "daycast.db"
	c.AutosaveQuietPeriod = 500 * time.Millisecond
	c.AutosaveSavedWindow = 1500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
