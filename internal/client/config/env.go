package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by parseEnv.
const (
	envAPIBaseURL    = "SPORTRADAR_API_URL"
	envRenewInterval = "SPORTRADAR_RENEW_INTERVAL"
	envDatabasePath  = "SPORTRADAR_DB"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; missing files
// are not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv(envAPIBaseURL)); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envRenewInterval)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RenewInterval = d
		}
	}
	if v := strings.TrimSpace(os.Getenv(envDatabasePath)); v != "" {
		cfg.DatabasePath = v
	}
}
