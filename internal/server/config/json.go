package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/raptorboost/internal/flagx"
	"github.com/dmitrijs2005/raptorboost/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "10s" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	BaseDir          string         `json:"base_dir"`
	LedgerDSN        string         `json:"ledger_dsn"`
	MetricsAddr      *string        `json:"metrics_addr"`
	LogFile          string         `json:"log_file"`
	LogLevel         string         `json:"log_level"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout"`
	MaxRecvMsgSizeMB int            `json:"max_recv_msg_size_mb"`
}

// parseJson overlays values from the file named by -c/-config onto config.
// Keys missing from the file keep their current value; metrics_addr may be
// set to "" explicitly to disable the metrics endpoint. An unreadable or
// malformed file panics, like a malformed flag does.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.BaseDir != "" {
		config.BaseDir = c.BaseDir
	}
	if c.LedgerDSN != "" {
		config.LedgerDSN = c.LedgerDSN
	}
	if c.MetricsAddr != nil {
		config.MetricsAddr = *c.MetricsAddr
	}
	if c.LogFile != "" {
		config.LogFile = c.LogFile
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.MaxRecvMsgSizeMB != 0 {
		config.MaxRecvMsgSizeMB = c.MaxRecvMsgSizeMB
	}
}
