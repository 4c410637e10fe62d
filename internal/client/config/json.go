package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/raptorboost/internal/flagx"
	"github.com/dmitrijs2005/raptorboost/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	TransferName       string         `json:"transfer_name"`
	ChunkSizeKB        int            `json:"chunk_size_kb"`
	Parallelism        int            `json:"parallelism"`
	Timeout            timex.Duration `json:"timeout"`
	LogLevel           string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Keys missing from the file keep their current value. Panics on
// read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.TransferName != "" {
		cfg.TransferName = jc.TransferName
	}
	if jc.ChunkSizeKB > 0 {
		cfg.ChunkSizeKB = jc.ChunkSizeKB
	}
	if jc.Parallelism > 0 {
		cfg.Parallelism = jc.Parallelism
	}
	if jc.Timeout.Duration > 0 {
		cfg.Timeout = jc.Timeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
