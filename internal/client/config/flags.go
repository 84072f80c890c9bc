package config

import (
	"flag"
	"os"
	"time"

	"github.com/sportradar/sportradar-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API
//	-i int      token renewal interval in seconds
//	-d string   path of the local credentials database
//
// os.Args is filtered to the flags handled here so the flag set does not
// trip over flags owned by other components (such as -c/-config).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	renewSeconds := fs.Int("i", int(cfg.RenewInterval.Seconds()), "token renewal interval (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local credentials database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RenewInterval = time.Duration(*renewSeconds) * time.Second
}
