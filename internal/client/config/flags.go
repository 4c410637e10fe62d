package config

import (
	"flag"
	"io"
	"os"
	"time"
)

// parseFlags populates Config from the command line. Unlike the server, the
// uploader owns all of os.Args, so it parses them whole and keeps the
// positional arguments as Files. -c/-config are accepted and ignored here;
// parseJson has already consumed them.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.String("c", "", "path to JSON config file (short)")
	fs.String("config", "", "path to JSON config file")

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.TransferName, "n", cfg.TransferName, "transfer name")
	fs.BoolVar(&cfg.Force, "f", cfg.Force, "restage objects and replace existing names")
	fs.IntVar(&cfg.ChunkSizeKB, "s", cfg.ChunkSizeKB, "chunk size (in KiB)")
	fs.IntVar(&cfg.Parallelism, "p", cfg.Parallelism, "objects sent in parallel")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.Timeout.Seconds()), "timeout (in seconds)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}

	cfg.Timeout = time.Duration(*timeout) * time.Second
	cfg.Files = fs.Args()
}
