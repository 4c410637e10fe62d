// Package server wires the RaptorBoost transfer engine together: content
// store, upload coordinator, naming subsystem and binding ledger behind the
// gRPC endpoint, plus the Prometheus endpoint. It handles graceful shutdown
// on SIGINT, SIGTERM and SIGQUIT.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dmitrijs2005/raptorboost/internal/buildinfo"
	"github.com/dmitrijs2005/raptorboost/internal/logging"
	"github.com/dmitrijs2005/raptorboost/internal/server/config"
	"github.com/dmitrijs2005/raptorboost/internal/server/ledger"
	"github.com/dmitrijs2005/raptorboost/internal/server/metrics"
	"github.com/dmitrijs2005/raptorboost/internal/server/naming"
	"github.com/dmitrijs2005/raptorboost/internal/server/store"
	"github.com/dmitrijs2005/raptorboost/internal/server/upload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/raptorboost/internal/server/grpc"
)

const (
	ledgerDir    = "ledger"
	sqliteScheme = "sqlite:"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	registry *prometheus.Registry
	ledger   ledger.Repository
	uploads  *upload.Coordinator
	names    *naming.Linker
}

func NewApp(c *config.Config) (*App, error) {

	logger, err := logging.New(logging.Options{Level: c.LogLevel, File: c.LogFile})
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	st, err := store.New(c.BaseDir, logger, m)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	repo, err := openLedger(context.Background(), c)
	if err != nil {
		return nil, fmt.Errorf("ledger init error: %w", err)
	}

	ln, err := naming.NewLinker(c.BaseDir, st, repo, logger, m)
	if err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("naming init error: %w", err)
	}

	return &App{
		config:   c,
		logger:   logger,
		registry: registry,
		ledger:   repo,
		uploads:  upload.NewCoordinator(st, logger, m),
		names:    ln,
	}, nil
}

// openLedger picks the backend from the DSN: empty means LevelDB under the
// base directory, "sqlite:<path>" a SQLite file, anything else PostgreSQL.
func openLedger(ctx context.Context, c *config.Config) (ledger.Repository, error) {
	switch {
	case c.LedgerDSN == "":
		return ledger.OpenLevelDB(filepath.Join(c.BaseDir, ledgerDir))
	case strings.HasPrefix(c.LedgerDSN, sqliteScheme):
		return ledger.OpenSQLite(ctx, strings.TrimPrefix(c.LedgerDSN, sqliteScheme))
	default:
		return ledger.OpenPostgres(ctx, c.LedgerDSN)
	}
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Received signal", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves until ctx is canceled, a signal arrives or a server fails.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "version", buildinfo.Version, "base_dir", app.config.BaseDir)

	app.initSignalHandler(ctx, cancelFunc)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.uploads, app.names,
			gs.WithMaxRecvMsgSize(app.config.MaxRecvMsgSize()),
			gs.WithShutdownTimeout(app.config.ShutdownTimeout),
		)
		return s.Run(ctx)
	})

	if app.config.MetricsAddr != "" {
		g.Go(func() error {
			return metrics.NewServer(app.config.MetricsAddr, app.registry, app.logger).Run(ctx)
		})
	}

	err := g.Wait()
	if cerr := app.ledger.Close(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("closing ledger: %w", cerr))
	}
	if err != nil {
		app.logger.Error(ctx, "App stopped with error", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
