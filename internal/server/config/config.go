// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the RaptorBoost server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the plaintext gRPC endpoint. Run it
//     behind an already secured tunnel only.
//   - BaseDir: root of the content store, transfer directories and the
//     default LevelDB ledger.
//   - LedgerDSN: PostgreSQL DSN (pgx), or "sqlite:<path>" for a SQLite file.
//     When empty the ledger lives in LevelDB under BaseDir.
//   - MetricsAddr: bind address of the Prometheus endpoint; empty disables it.
//   - LogFile / LogLevel: optional rotated log file and minimum level.
//   - ShutdownTimeout: how long graceful stop may take before connections
//     are cut.
//   - MaxRecvMsgSizeMB: largest single gRPC message accepted.
type Config struct {
	EndpointAddrGRPC string
	BaseDir          string
	LedgerDSN        string
	MetricsAddr      string
	LogFile          string
	LogLevel         string
	ShutdownTimeout  time.Duration
	MaxRecvMsgSizeMB int
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = "[::1]:7272"
	c.BaseDir = "raptorboost-data"
	c.LedgerDSN = ""
	c.MetricsAddr = "[::1]:7273"
	c.LogFile = ""
	c.LogLevel = "info"
	c.ShutdownTimeout = 10 * time.Second
	c.MaxRecvMsgSizeMB = 16
}

// MaxRecvMsgSize returns MaxRecvMsgSizeMB in bytes.
func (c *Config) MaxRecvMsgSize() int {
	return c.MaxRecvMsgSizeMB << 20
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
