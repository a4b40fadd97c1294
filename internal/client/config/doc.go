// Package config loads runtime configuration for the portal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the portal REST API
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-d string   path to the local session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:3000",
//	  "request_timeout": "10s",
//	  "online_check_interval": "30s",
//	  "database_path": "portal.db"
//	}
//
// Primary API
//
//   - type Config                     — holds BaseURL, RequestTimeout, OnlineCheckInterval, DatabasePath
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
