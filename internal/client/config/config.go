package config

import "time"

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, without a trailing slash.
//   - RequestTimeout: per-request bound applied by the HTTP client.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DatabasePath: location of the local SQLite session database.
type Config struct {
	BaseURL             string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	DatabasePath        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
	c.DatabasePath = "portal.db"
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
