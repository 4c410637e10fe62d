package grpc

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/raptorboost/internal/digest"
	"github.com/dmitrijs2005/raptorboost/internal/logging"
	pb "github.com/dmitrijs2005/raptorboost/internal/proto"
	"github.com/dmitrijs2005/raptorboost/internal/server/ledger"
	"github.com/dmitrijs2005/raptorboost/internal/server/naming"
	"github.com/dmitrijs2005/raptorboost/internal/server/store"
	"github.com/dmitrijs2005/raptorboost/internal/server/upload"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

// newBackends wires real services over a temporary base directory.
func newBackends(t *testing.T) (*upload.Coordinator, *naming.Linker) {
	t.Helper()
	base := t.TempDir()
	s, err := store.New(filepath.Join(base, "store"), logging.Discard(), nil)
	require.NoError(t, err)
	ln, err := naming.NewLinker(base, s, ledger.NewMemoryRepository(), logging.Discard(), nil)
	require.NoError(t, err)
	return upload.NewCoordinator(s, logging.Discard(), nil), ln
}

// startBufServer serves srv over an in-memory listener and returns a client.
func startBufServer(t *testing.T, srv *GRPCServer) pb.RaptorBoostClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewRaptorBoostClient(conn)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	us, ns := newBackends(t)
	srv := NewGRPCServer("127.0.0.1:0", logging.Discard(), us, ns)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	us, ns := newBackends(t)
	srv := NewGRPCServer("127.0.0.1:99999", logging.Discard(), us, ns)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

func TestServe_ShutdownTimeoutCutsOpenStreams(t *testing.T) {
	t.Parallel()

	us, ns := newBackends(t)
	srv := NewGRPCServer("", logging.Discard(), us, ns, WithShutdownTimeout(100*time.Millisecond))
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	// An ingest stream that never closes would block GracefulStop forever.
	stream, err := pb.NewRaptorBoostClient(conn).SendFileData(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(&pb.SendFileDataRequest{Payload: &pb.SendFileDataRequest_First{First: &pb.FirstChunk{
		Sha256Sum: digest.FromBytes([]byte("never finished")).Hex(),
		Data:      []byte("never"),
	}}}))

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after the shutdown timeout")
	}
}

func TestServe_HealthServiceRegistered(t *testing.T) {
	t.Parallel()

	us, ns := newBackends(t)
	srv := NewGRPCServer("", logging.Discard(), us, ns)
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	hc := healthpb.NewHealthClient(conn)
	resp, err := hc.Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.RaptorBoost_ServiceDesc.ServiceName})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	// Both services share the default codec on one server.
	v, err := pb.NewRaptorBoostClient(conn).GetVersion(context.Background(), &pb.GetVersionRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, v.GetVersion())
}
