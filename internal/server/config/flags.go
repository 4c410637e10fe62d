package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/raptorboost/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., "[::1]:7272")
//	-b string   base directory of the store
//	-d string   binding ledger DSN: PostgreSQL, or sqlite:<path>
//	-m string   metrics bind address, empty to disable
//	-f string   log file (rotated)
//	-l string   log level: debug, info, warn, error
//	-t int      graceful shutdown timeout, seconds
//	-s int      max gRPC receive message size, MiB
//
// os.Args is filtered through flagx.FilterArgs first so that -c/-config
// and flags owned by other components do not make parsing fail.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-d", "-m", "-f", "-l", "-t", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.BaseDir, "b", config.BaseDir, "base directory")
	fs.StringVar(&config.LedgerDSN, "d", config.LedgerDSN, "ledger database DSN")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "metrics address")
	fs.StringVar(&config.LogFile, "f", config.LogFile, "log file")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.IntVar(&config.MaxRecvMsgSizeMB, "s", config.MaxRecvMsgSizeMB, "max receive message size (in MiB)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
}
