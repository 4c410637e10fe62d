// Package client is the gRPC client for a RaptorBoost server.
//
// # Overview
//
// GRPCClient wraps the generated stubs with domain types:
//
//   - Version and Negotiate for the unary handshake calls.
//   - Send, which streams one or more objects over a single SendFileData
//     call, resuming each object from the offset the server reported.
//   - AssignNames and ListTransfer for the naming subsystem.
//
// Every outgoing call carries an x-request-id header, so client and server
// log lines can be correlated.
//
// # Error Handling
//
// gRPC status codes are mapped to sentinel errors that callers can match with
// errors.Is: ErrUnavailable, common.ErrWriteConflict,
// common.ErrIncompleteObject, common.ErrorNotFound and common.ErrInvalidArgument.
package client
