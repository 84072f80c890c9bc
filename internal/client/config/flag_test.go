package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		expected    *Config
		expectPanic bool
	}{
		{
			name: "overrides all fields",
			args: []string{"cmd", "-a", "https://api.example.com", "-i", "120", "-d", "alt.db"},
			expected: &Config{
				APIBaseURL:    "https://api.example.com",
				RenewInterval: 120 * time.Second,
				DatabasePath:  "alt.db",
			},
		},
		{
			name:        "non-numeric interval panics",
			args:        []string{"cmd", "-i", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
			os.Args = tt.args

			cfg := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Equal(t, tt.expected, cfg)
		})
	}
}
