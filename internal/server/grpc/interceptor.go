package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/raptorboost/internal/common"
	"github.com/dmitrijs2005/raptorboost/internal/logging"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// RequestIDFromContext returns the id assigned to the current call.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// withRequestID reuses a request id sent by the client or creates one.
func withRequestID(ctx context.Context) (context.Context, string) {
	var id string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.RequestIDHeaderName); len(values) > 0 {
			id = values[0]
		}
	}
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey, id), id
}

func (s *GRPCServer) log(ctx context.Context) logging.Logger {
	if id := RequestIDFromContext(ctx); id != "" {
		return s.logger.With("request_id", id)
	}
	return s.logger
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	ctx, id := withRequestID(ctx)
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, id))

	start := time.Now()
	resp, err := handler(ctx, req)

	s.log(ctx).Info(ctx, "Handled call",
		"method", info.FullMethod, "code", status.Code(err).String(), "elapsed", time.Since(start))

	return resp, err
}

// requestStream carries the request id context into stream handlers.
type requestStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *requestStream) Context() context.Context {
	return w.ctx
}

func (s *GRPCServer) streamLoggingInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {

	ctx, id := withRequestID(ss.Context())
	_ = ss.SetHeader(metadata.Pairs(common.RequestIDHeaderName, id))

	start := time.Now()
	err := handler(srv, &requestStream{ServerStream: ss, ctx: ctx})

	s.log(ctx).Info(ctx, "Handled stream",
		"method", info.FullMethod, "code", status.Code(err).String(), "elapsed", time.Since(start))

	return err
}
