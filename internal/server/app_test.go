package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/raptorboost/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.BaseDir = t.TempDir()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.MetricsAddr = "127.0.0.1:0"
	c.LogLevel = "error"
	c.ShutdownTimeout = time.Second
	return c
}

func TestNewApp_CreatesLayout(t *testing.T) {
	c := testConfig(t)

	app, err := NewApp(c)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.ledger.Close() })

	for _, dir := range []string{"complete", "partial", "locks", "transfers", ledgerDir} {
		info, err := os.Stat(filepath.Join(c.BaseDir, dir))
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
}

func TestNewApp_SQLiteLedger(t *testing.T) {
	c := testConfig(t)
	c.LedgerDSN = "sqlite:" + filepath.Join(c.BaseDir, "ledger.db")

	app, err := NewApp(c)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.ledger.Close() })

	_, err = os.Stat(filepath.Join(c.BaseDir, "ledger.db"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(c.BaseDir, ledgerDir))
	assert.True(t, os.IsNotExist(err), "LevelDB is not opened when a DSN is set")
}

func TestNewApp_InvalidLogLevel(t *testing.T) {
	c := testConfig(t)
	c.LogLevel = "verbose"

	_, err := NewApp(c)
	assert.Error(t, err)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	app, err := NewApp(testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(150 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after context cancel")
	}
}

func TestRun_FailsOnBadAddress(t *testing.T) {
	c := testConfig(t)
	c.EndpointAddrGRPC = "127.0.0.1:99999"

	app, err := NewApp(c)
	require.NoError(t, err)

	select {
	case err := <-runAsync(app):
		assert.Error(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not fail on a bad address")
	}
}

func runAsync(app *App) <-chan error {
	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()
	return done
}
