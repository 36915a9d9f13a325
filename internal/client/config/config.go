package config

import "time"

// Environment names recognized by the portal.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - BaseURL: absolute URL of the backend API root, e.g. http://localhost:5062/api.
//   - Environment: development or production; tunnel bypass headers are only
//     attached outside production.
//   - RequestTimeout: per-request HTTP timeout.
//   - RefreshTimeout: upper bound for one session refresh cycle.
//   - StartRoute: route the shell opens after the silent session restore.
type Config struct {
	BaseURL        string
	Environment    string
	RequestTimeout time.Duration
	RefreshTimeout time.Duration
	StartRoute     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5062/api"
	c.Environment = EnvDevelopment
	c.RequestTimeout = 30 * time.Second
	c.RefreshTimeout = 15 * time.Second
	c.StartRoute = "dashboard"
}

// IsProduction reports whether the production profile is active.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
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
