package config

import (
	"time"

	"github.com/dmitrijs2005/raptorboost/internal/common"
)

// Config holds runtime settings for the uploader.
type Config struct {
	ServerEndpointAddr string
	TransferName       string
	Force              bool
	ChunkSizeKB        int
	Parallelism        int
	Timeout            time.Duration
	LogLevel           string
	Files              []string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "[::1]:7272"
	c.TransferName = ""
	c.Force = false
	c.ChunkSizeKB = common.DefaultChunkSize >> 10
	c.Parallelism = 4
	c.Timeout = 0
	c.LogLevel = "info"
}

// ChunkSize returns ChunkSizeKB in bytes.
func (c *Config) ChunkSize() int {
	return c.ChunkSizeKB << 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
