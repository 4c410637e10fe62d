package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/raptorboost/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps domain errors to gRPC status errors. Aborted signals a
// retryable write conflict.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrInvalidDigest),
		errors.Is(err, common.ErrInvalidName),
		errors.Is(err, common.ErrProtocolViolation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrWriteConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, common.ErrIncompleteObject):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	if st, ok := status.FromError(err); ok {
		return st.Err()
	}
	return status.Error(codes.Internal, "internal error")
}
