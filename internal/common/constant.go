// Package common contains shared constants and sentinel errors used across
// RaptorBoost components.
package common

// RequestIDHeaderName is the gRPC metadata key carrying the request id. The
// client may set it; the server generates one when it is missing.
const RequestIDHeaderName = "x-request-id"

// DefaultChunkSize is the payload size the client puts into a single
// SendFileData message.
const DefaultChunkSize = 1 << 20
