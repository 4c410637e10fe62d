// Package config loads runtime configuration for the RaptorBoost uploader.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the server gRPC endpoint
//	-n string   transfer name; empty lets the server generate one
//	-f          force: restage objects and replace existing names
//	-s int      chunk size in KiB
//	-p int      number of objects sent in parallel
//	-t int      per-run timeout in seconds, 0 for none
//	-l string   log level
//
// Remaining arguments are the files to upload.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "[::1]:7272",
//	  "transfer_name": "alice-2024",
//	  "chunk_size_kb": 1024,
//	  "parallelism": 4,
//	  "timeout": "10m",
//	  "log_level": "info"
//	}
package config
