// Command client uploads files to a RaptorBoost server and binds them to
// their base names inside a transfer.
//
//	client -a [::1]:7272 -n alice-2024 report.pdf data.bin
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/raptorboost/internal/client/client"
	"github.com/dmitrijs2005/raptorboost/internal/client/config"
	"github.com/dmitrijs2005/raptorboost/internal/client/services"
	"github.com/dmitrijs2005/raptorboost/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	if len(cfg.Files) == 0 {
		log.Fatalf("usage: %s [flags] file...", os.Args[0])
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel})
	if err != nil {
		log.Fatalf("%v", err)
	}

	c, err := client.NewRaptorBoostClient(cfg.ServerEndpointAddr, client.WithChunkSize(cfg.ChunkSize()))
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if v, err := c.Version(ctx); err == nil {
		logger.Info(ctx, "Connected", "server", cfg.ServerEndpointAddr, "version", v)
	}

	rep, err := services.NewUploadService(c, logger, cfg.Parallelism).Run(ctx, cfg.Files, cfg.TransferName, cfg.Force)
	if rep != nil {
		fmt.Printf("transfer %s: %d sent, %d already present\n", rep.Transfer, len(rep.Sent), len(rep.Skipped))
		for _, r := range rep.Names {
			fmt.Printf("  %-40s %s %s\n", r.Name, r.Status, r.Error)
		}
	}
	if err != nil {
		logger.Error(ctx, "Upload failed", "error", err)
		c.Close()
		os.Exit(1)
	}
}
