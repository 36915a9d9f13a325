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
//	-a string   absolute base URL of the backend API
//	-e string   environment profile (development or production)
//	-t int      per-request timeout (seconds)
//	-r int      session refresh timeout (seconds)
//	-s string   route opened after startup restore
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:5062/api",
//	  "environment": "development",
//	  "request_timeout": "30s",
//	  "refresh_timeout": "15s",
//	  "start_route": "dashboard"
//	}
//
// Primary API
//
//   - type Config                     — holds the portal runtime settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
