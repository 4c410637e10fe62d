// Package ledger records name bindings made by the naming subsystem.
//
// The filesystem link tree is the source of truth for what a transfer
// contains; the ledger keeps the digest each name was bound to and when, so
// a transfer can be listed without walking and rehashing its directory.
package ledger

import (
	"context"
	"time"

	"github.com/dmitrijs2005/raptorboost/internal/digest"
)

// Binding is one name in a transfer directory bound to a content digest.
type Binding struct {
	Transfer string        `cbor:"transfer"`
	Name     string        `cbor:"name"`
	Digest   digest.Digest `cbor:"sha256"`
	BoundAt  time.Time     `cbor:"bound_at"`
}

// Repository stores the latest binding per (transfer, name).
type Repository interface {
	// Record inserts or replaces the binding for b.Transfer/b.Name.
	Record(ctx context.Context, b Binding) error
	// List returns the bindings of a transfer ordered by name.
	List(ctx context.Context, transfer string) ([]Binding, error)
	Close() error
}
