package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"raptorboost"}, args...)
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "[::1]:7272", c.ServerEndpointAddr)
	assert.Equal(t, 1024, c.ChunkSizeKB)
	assert.Equal(t, 1<<20, c.ChunkSize())
	assert.Equal(t, 4, c.Parallelism)
	assert.Zero(t, c.Timeout)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    *Config
		expectPanic bool
	}{
		{
			name: "all flags and files",
			args: []string{"-a", "127.0.0.1:9090", "-n", "alice-2024", "-f", "-s", "64", "-p", "2", "-t", "30", "-l", "debug", "report.pdf", "data.bin"},
			expected: &Config{
				ServerEndpointAddr: "127.0.0.1:9090",
				TransferName:       "alice-2024",
				Force:              true,
				ChunkSizeKB:        64,
				Parallelism:        2,
				Timeout:            30 * time.Second,
				LogLevel:           "debug",
				Files:              []string{"report.pdf", "data.bin"},
			},
		},
		{
			name:     "config flag is tolerated",
			args:     []string{"-c", "cfg.json", "a.txt"},
			expected: &Config{Files: []string{"a.txt"}},
		},
		{name: "bad chunk size", args: []string{"-s", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)
			cfg := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_endpoint_addr": "json:1",
		"transfer_name":        "from-json",
		"timeout":              "2m",
		"chunk_size_kb":        256,
	})
	withArgs(t, "-config", path, "-n", "from-flag", "x.bin")

	cfg := LoadConfig()

	assert.Equal(t, "json:1", cfg.ServerEndpointAddr)
	assert.Equal(t, "from-flag", cfg.TransferName)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.Equal(t, 256, cfg.ChunkSizeKB)
	assert.Equal(t, []string{"x.bin"}, cfg.Files)
}

func TestParseJson_InvalidPanics(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
	withArgs(t, "-c", bad)

	require.Panics(t, func() { parseJson(&Config{}) })
}
