// Package upload drives negotiation and multiplexed ingest against the
// content store.
//
// One ingest stream carries any number of objects back to back. Each object
// is introduced by a first marker (digest, force flag, initial bytes) and
// continued by raw data chunks; it is finalized when the next first marker
// arrives or the sender closes the stream. Only the outcome of the last
// object is returned, so callers re-negotiate after a multi-object stream to
// learn what happened to the others.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/raptorboost/internal/common"
	"github.com/dmitrijs2005/raptorboost/internal/digest"
	"github.com/dmitrijs2005/raptorboost/internal/logging"
	"github.com/dmitrijs2005/raptorboost/internal/server/metrics"
	"github.com/dmitrijs2005/raptorboost/internal/server/store"
)

// NeedState is the negotiation answer for one digest.
type NeedState int

const (
	NeedMoreData NeedState = iota
	NeedComplete
)

func (s NeedState) String() string {
	if s == NeedComplete {
		return "complete"
	}
	return "need_more_data"
}

// Need tells the client whether to send a digest and from which offset.
// Offset is zero for Complete objects and for objects with nothing staged.
type Need struct {
	Digest digest.Digest
	State  NeedState
	Offset int64
}

// Outcome is the terminal status of an ingest stream.
type Outcome int

const (
	OutcomeComplete Outcome = iota
	OutcomeChecksumError
)

func (o Outcome) String() string {
	if o == OutcomeChecksumError {
		return "checksum_error"
	}
	return "complete"
}

// Result reports the outcome of the last object of a stream.
type Result struct {
	Digest  digest.Digest
	Outcome Outcome
	Size    int64
}

// First introduces a new object on the stream.
type First struct {
	Digest digest.Digest
	// Force discards previously staged or completed bytes of Digest.
	Force bool
}

// Chunk is one element of an ingest stream. First is nil on continuation
// chunks.
type Chunk struct {
	First *First
	Data  []byte
}

// ChunkSource yields stream elements. Recv returns io.EOF when the sender
// closed the stream cleanly; any other error means the stream dropped.
type ChunkSource interface {
	Recv() (*Chunk, error)
}

type Coordinator struct {
	store   *store.Store
	logger  logging.Logger
	metrics *metrics.Metrics
}

func NewCoordinator(s *store.Store, l logging.Logger, m *metrics.Metrics) *Coordinator {
	return &Coordinator{
		store:   s,
		logger:  l.With("module", "upload"),
		metrics: m,
	}
}

// Negotiate reports, for every digest in order, whether it is Complete or
// needs data from an offset.
func (c *Coordinator) Negotiate(ctx context.Context, digests []digest.Digest) ([]Need, error) {
	needs := make([]Need, 0, len(digests))
	for _, d := range digests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		st, err := c.store.Query(d)
		if err != nil {
			return nil, err
		}

		n := Need{Digest: d, State: NeedMoreData}
		switch st.State {
		case store.StateComplete:
			n.State = NeedComplete
		case store.StatePartial:
			n.Offset = st.Offset
		}
		c.metrics.Negotiated(n.State.String())
		needs = append(needs, n)
	}

	c.logger.Debug(ctx, "Negotiated", "digests", len(digests))
	return needs, nil
}

type slotKind int

const (
	noActiveDigest slotKind = iota
	writing
	discarding
)

// slot is the active object of a stream. In the writing state w holds the
// lease; in the discarding state the object was already complete and its
// bytes are dropped.
type slot struct {
	kind     slotKind
	digest   digest.Digest
	w        *store.Writer
	received int64
}

// Ingest consumes src until it is closed and returns the outcome of the last
// object. Earlier objects are finalized as soon as the next first marker
// arrives; their checksum errors are only logged.
//
// If the stream drops, the object being written is released without
// finalization and stays Partial at whatever offset was reached.
func (c *Coordinator) Ingest(ctx context.Context, src ChunkSource) (res Result, err error) {
	started := time.Now()
	defer c.metrics.IngestFinished(started)

	var cur slot
	defer func() {
		if cur.kind == writing {
			if rerr := cur.w.Release(); rerr != nil {
				c.logger.Error(ctx, "Releasing writer failed", "sha256", cur.digest.Hex(), "error", rerr)
			}
			c.logger.Warn(ctx, "Stream ended before finalization, object left partial",
				"sha256", cur.digest.Hex(), "offset", cur.w.Offset())
		}
	}()

	objects := 0
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		chunk, err := src.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("receiving chunk: %w", err)
		}

		if chunk.First != nil {
			if cur.kind != noActiveDigest {
				r, err := c.finish(ctx, &cur)
				if err != nil {
					return Result{}, err
				}
				if r.Outcome == OutcomeChecksumError {
					c.logger.Warn(ctx, "Object in stream failed verification", "sha256", r.Digest.Hex())
				}
			}
			if cur, err = c.open(ctx, *chunk.First); err != nil {
				return Result{}, err
			}
			objects++
		} else if cur.kind == noActiveDigest {
			return Result{}, fmt.Errorf("%w: data chunk before first marker", common.ErrProtocolViolation)
		}

		if err := c.accept(&cur, chunk.Data); err != nil {
			return Result{}, err
		}
	}

	if cur.kind == noActiveDigest {
		return Result{}, fmt.Errorf("%w: stream closed without a first marker", common.ErrProtocolViolation)
	}

	res, err = c.finish(ctx, &cur)
	if err != nil {
		return Result{}, err
	}

	c.logger.Info(ctx, "Ingest stream closed",
		"objects", objects, "last", res.Digest.Hex(), "outcome", res.Outcome.String(), "elapsed", time.Since(started))
	return res, nil
}

func (c *Coordinator) open(ctx context.Context, f First) (slot, error) {
	if !f.Force {
		complete, err := c.isComplete(f.Digest)
		if err != nil {
			return slot{}, err
		}
		if complete {
			c.logger.Debug(ctx, "Object already complete, discarding bytes", "sha256", f.Digest.Hex())
			return slot{kind: discarding, digest: f.Digest}, nil
		}
	}

	w, err := c.store.Acquire(f.Digest)
	if err != nil {
		return slot{}, err
	}

	if f.Force {
		if err := w.Reset(); err != nil {
			return slot{}, errors.Join(err, w.Release())
		}
		c.logger.Info(ctx, "Forced restart", "sha256", f.Digest.Hex())
	} else {
		// Another stream may have completed the object between the check
		// above and taking the lease.
		complete, err := c.isComplete(f.Digest)
		if err != nil {
			return slot{}, errors.Join(err, w.Release())
		}
		if complete {
			if err := w.Release(); err != nil {
				return slot{}, err
			}
			return slot{kind: discarding, digest: f.Digest}, nil
		}
	}

	c.logger.Debug(ctx, "Writing object", "sha256", f.Digest.Hex(), "offset", w.Offset())
	return slot{kind: writing, digest: f.Digest, w: w}, nil
}

func (c *Coordinator) isComplete(d digest.Digest) (bool, error) {
	st, err := c.store.Query(d)
	if err != nil {
		return false, err
	}
	return st.State == store.StateComplete, nil
}

func (c *Coordinator) accept(s *slot, p []byte) error {
	if len(p) == 0 {
		return nil
	}
	s.received += int64(len(p))
	if s.kind != writing {
		return nil
	}
	_, err := s.w.Append(p)
	return err
}

// finish finalizes the active object and resets the slot. A checksum
// mismatch is an outcome, not an error.
func (c *Coordinator) finish(ctx context.Context, s *slot) (Result, error) {
	cur := *s
	*s = slot{}

	switch cur.kind {
	case discarding:
		st, err := c.store.Query(cur.digest)
		if err != nil {
			return Result{}, err
		}
		return Result{Digest: cur.digest, Outcome: OutcomeComplete, Size: st.Offset}, nil

	case writing:
		size := cur.w.Offset()
		ferr := cur.w.Finalize()
		if err := cur.w.Release(); err != nil {
			c.logger.Error(ctx, "Releasing writer failed", "sha256", cur.digest.Hex(), "error", err)
		}
		switch {
		case ferr == nil:
			return Result{Digest: cur.digest, Outcome: OutcomeComplete, Size: size}, nil
		case errors.Is(ferr, common.ErrChecksumMismatch):
			return Result{Digest: cur.digest, Outcome: OutcomeChecksumError, Size: size}, nil
		default:
			return Result{}, ferr
		}
	}

	return Result{}, fmt.Errorf("%w: no active object", common.ErrProtocolViolation)
}
