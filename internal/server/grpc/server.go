package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/raptorboost/internal/digest"
	"github.com/dmitrijs2005/raptorboost/internal/logging"
	pb "github.com/dmitrijs2005/raptorboost/internal/proto"
	"github.com/dmitrijs2005/raptorboost/internal/server/ledger"
	"github.com/dmitrijs2005/raptorboost/internal/server/naming"
	"github.com/dmitrijs2005/raptorboost/internal/server/upload"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type uploadService interface {
	Negotiate(ctx context.Context, digests []digest.Digest) ([]upload.Need, error)
	Ingest(ctx context.Context, src upload.ChunkSource) (upload.Result, error)
}

type namingService interface {
	AssignNames(ctx context.Context, transfer string, force bool, reqs []naming.Request) (naming.Result, error)
	List(ctx context.Context, transfer string) ([]ledger.Binding, error)
}

type GRPCServer struct {
	pb.UnimplementedRaptorBoostServer
	address         string
	uploads         uploadService
	names           namingService
	logger          logging.Logger
	maxRecvMsgSize  int
	shutdownTimeout time.Duration
}

type Option func(*GRPCServer)

// WithMaxRecvMsgSize bounds a single received message, and so the largest
// chunk a client may send.
func WithMaxRecvMsgSize(n int) Option {
	return func(s *GRPCServer) { s.maxRecvMsgSize = n }
}

// WithShutdownTimeout limits how long a graceful stop waits for open
// streams before they are cut.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *GRPCServer) { s.shutdownTimeout = d }
}

func NewGRPCServer(a string, l logging.Logger, us uploadService, ns namingService, opts ...Option) *GRPCServer {
	s := &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		uploads: us,
		names:   ns,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// newServer registers RaptorBoost next to the standard health service.
func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(s.loggingInterceptor),
		grpc.ChainStreamInterceptor(s.streamLoggingInterceptor),
	}
	if s.maxRecvMsgSize > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(s.maxRecvMsgSize))
	}

	srv := grpc.NewServer(opts...)
	pb.RegisterRaptorBoostServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.RaptorBoost_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	return srv, hs
}

// Run listens on the configured address and serves until ctx is canceled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is canceled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv, hs := s.newServer()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-done:
			return
		case <-ctx.Done():
		}
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		s.stop(srv)
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}

func (s *GRPCServer) stop(srv *grpc.Server) {
	if s.shutdownTimeout <= 0 {
		srv.GracefulStop()
		return
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(s.shutdownTimeout):
		s.logger.Warn(context.Background(), "Graceful stop timed out, closing open streams", "timeout", s.shutdownTimeout)
		srv.Stop()
	}
}
