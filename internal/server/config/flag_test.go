package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "0.0.0.0:9090", "-b", "/srv/rb", "-d", "postgres://x", "-m", ":9091",
				"-f", "/var/log/rb.log", "-l", "debug", "-t", "30", "-s", "64",
			},
			expected: &Config{
				EndpointAddrGRPC: "0.0.0.0:9090",
				BaseDir:          "/srv/rb",
				LedgerDSN:        "postgres://x",
				MetricsAddr:      ":9091",
				LogFile:          "/var/log/rb.log",
				LogLevel:         "debug",
				ShutdownTimeout:  30 * time.Second,
				MaxRecvMsgSizeMB: 64,
			},
		},
		{
			name: "foreign flags are ignored",
			args: []string{"cmd", "-c", "conf.json", "-test.v", "-a", ":1"},
			expected: &Config{
				EndpointAddrGRPC: ":1",
			},
		},
		{
			name:        "non numeric timeout panics",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
