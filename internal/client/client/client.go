package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/raptorboost/internal/digest"
)

// Client is the API a RaptorBoost server offers to uploaders.
type Client interface {
	Close() error
	Version(ctx context.Context) (string, error)
	Negotiate(ctx context.Context, digests []digest.Digest) ([]Need, error)
	Send(ctx context.Context, objects []Object) (SendResult, error)
	AssignNames(ctx context.Context, transfer string, force bool, reqs []NameRequest) (string, []NameResult, error)
	ListTransfer(ctx context.Context, transfer string) ([]Entry, error)
}

// Need is the server's answer for one digest of a Negotiate call. Offset is
// the number of bytes already staged and is zero when Complete is set.
type Need struct {
	Digest   digest.Digest
	Complete bool
	Offset   int64
}

// Object is a local file to stream. Data is read from Path starting at
// Offset. Force restarts the object on the server, so Offset is ignored.
type Object struct {
	Digest digest.Digest
	Path   string
	Offset int64
	Force  bool
}

// SendResult is the verdict for the last object of a Send call.
type SendResult struct {
	Digest        digest.Digest
	ChecksumError bool
}

type NameRequest struct {
	Digest digest.Digest
	Names  []string
}

type NameStatus int

const (
	NameStatusUnknown NameStatus = iota
	NameStatusSuccess
	NameStatusAlreadyExists
	NameStatusError
)

func (s NameStatus) String() string {
	switch s {
	case NameStatusSuccess:
		return "success"
	case NameStatusAlreadyExists:
		return "already exists"
	case NameStatusError:
		return "error"
	}
	return "unknown"
}

type NameResult struct {
	Name   string
	Digest string
	Status NameStatus
	Error  string
}

// Entry is one name bound inside a transfer.
type Entry struct {
	Name    string
	Digest  digest.Digest
	BoundAt time.Time
}
