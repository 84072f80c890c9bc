package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sportradar/sportradar-cli/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. The renewal
// interval is a duration string ("4m", "90s") parsed into time.Duration
// after decoding.
type jsonConfig struct {
	APIBaseURL    string `json:"api_base_url"`
	RenewInterval string `json:"renew_interval"`
	DatabasePath  string `json:"database_path"`
}

// parseJSON overlays Config with values from the JSON file named by the
// -c/-config flags. Without such a flag nothing is loaded. Read and decode
// errors panic; configuration files are operator input and failing loudly at
// startup beats running with half-applied settings.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RenewInterval != "" {
		d, err := time.ParseDuration(jc.RenewInterval)
		if err != nil {
			panic(err)
		}
		cfg.RenewInterval = d
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
