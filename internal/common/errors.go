// Package common defines shared constants and sentinel errors used across
// client and server layers of RaptorBoost. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Input validation.
	ErrInvalidDigest = errors.New("invalid sha256 digest")
	ErrInvalidName   = errors.New("invalid name")

	// Client-side mapping of rejected requests.
	ErrInvalidArgument = errors.New("invalid argument")

	// Content store errors.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	ErrWriteConflict    = errors.New("digest is being written by another upload")

	// Naming errors.
	ErrIncompleteObject = errors.New("object is not complete")

	// Ingest stream errors.
	ErrProtocolViolation = errors.New("protocol violation")
)
