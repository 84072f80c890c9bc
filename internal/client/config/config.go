// Package config assembles runtime settings for the SportRadar CLI from
// defaults, an optional .env file, an optional JSON config file and
// command-line flags, in that order of precedence.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - APIBaseURL: root of the backend REST API, e.g. "http://localhost:8000/api".
//   - RenewInterval: fallback period for the background token renewal loop.
//   - DatabasePath: path of the local credentials database.
type Config struct {
	APIBaseURL    string
	RenewInterval time.Duration
	DatabasePath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.RenewInterval = 4 * time.Minute
	c.DatabasePath = "sportradar.db"
}

// LoadConfig constructs a Config by applying, in order: defaults, the
// environment (including a .env file when present), a JSON file given via
// -c/-config, and command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
