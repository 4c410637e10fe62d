// Package store is the digest-keyed content store.
//
// Objects move through three states. Bytes being uploaded are staged under
// partial/<sha256>; finalization hashes the staged bytes and, on a match,
// renames them into complete/<sha256>. Rename is atomic, so a reader of
// complete/ never sees an object shorter than its final size, and nothing
// in partial/ is ever visible to the naming layer.
//
// On-disk layout under the root directory:
//
//	complete/<sha256>       verified, immutable objects
//	partial/<sha256>        staged bytes, length == resume offset
//	locks/<sha256>.lock     held while a writer owns the digest
//
// Writes to a digest are serialized by a lease: one Writer per digest at a
// time, enforced in-process by a lease map and across processes sharing the
// same root by an exclusively created lock file. A second writer is refused
// with common.ErrWriteConflict rather than queued.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dmitrijs2005/raptorboost/internal/common"
	"github.com/dmitrijs2005/raptorboost/internal/digest"
	"github.com/dmitrijs2005/raptorboost/internal/filex"
	"github.com/dmitrijs2005/raptorboost/internal/logging"
	"github.com/dmitrijs2005/raptorboost/internal/server/metrics"
)

// Directory names within the store root.
const (
	completeDir = "complete"
	partialDir  = "partial"
	locksDir    = "locks"

	lockSuffix = ".lock"
)

// State is the lifecycle state of a content object.
type State int

const (
	StateMissing State = iota
	StatePartial
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StatePartial:
		return "partial"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Status is the answer to Query. Offset is the number of staged bytes for
// StatePartial and the object size for StateComplete.
type Status struct {
	State  State
	Offset int64
}

type Store struct {
	root    string
	logger  logging.Logger
	metrics *metrics.Metrics

	mu     sync.Mutex
	leases map[digest.Digest]struct{}
}

// New opens the store rooted at root, creating the directory structure if
// needed. Lock files left behind by a previous process are removed: leases
// never survive a restart, and the staged bytes they guarded stay Partial.
func New(root string, l logging.Logger, m *metrics.Metrics) (*Store, error) {
	root = filepath.Clean(root)
	if err := filex.EnsureDirs(root, completeDir, partialDir, locksDir); err != nil {
		return nil, fmt.Errorf("creating store layout: %w", err)
	}

	s := &Store{
		root:    root,
		logger:  l.With("module", "store"),
		metrics: m,
		leases:  make(map[digest.Digest]struct{}),
	}

	if err := s.clearStaleLocks(); err != nil {
		return nil, err
	}

	s.logger.Info(context.Background(), "Opened content store", "root", root)
	return s, nil
}

func (s *Store) clearStaleLocks() error {
	entries, err := os.ReadDir(filepath.Join(s.root, locksDir))
	if err != nil {
		return fmt.Errorf("reading lock directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), lockSuffix) {
			continue
		}
		path := filepath.Join(s.root, locksDir, e.Name())
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing stale lock %s: %w", path, err)
		}
		s.logger.Warn(context.Background(), "Removed stale lock", "lock", e.Name())
	}
	return nil
}

// Root returns the store root directory.
func (s *Store) Root() string {
	return s.root
}

// CompletePath is where the verified bytes of d live once Complete.
func (s *Store) CompletePath(d digest.Digest) string {
	return filepath.Join(s.root, completeDir, d.Hex())
}

func (s *Store) partialPath(d digest.Digest) string {
	return filepath.Join(s.root, partialDir, d.Hex())
}

func (s *Store) lockPath(d digest.Digest) string {
	return filepath.Join(s.root, locksDir, d.Hex()+lockSuffix)
}

// Query reports the state of d without side effects.
func (s *Store) Query(d digest.Digest) (Status, error) {
	size, ok, err := s.completeSize(d)
	if err != nil {
		return Status{}, err
	}
	if ok {
		return Status{State: StateComplete, Offset: size}, nil
	}

	info, err := os.Stat(s.partialPath(d))
	switch {
	case err == nil:
		return Status{State: StatePartial, Offset: info.Size()}, nil
	case !errors.Is(err, fs.ErrNotExist):
		return Status{}, fmt.Errorf("stat partial %s: %w", d.Hex(), err)
	}

	// A finalize may have renamed partial into complete between the two stats.
	size, ok, err = s.completeSize(d)
	if err != nil {
		return Status{}, err
	}
	if ok {
		return Status{State: StateComplete, Offset: size}, nil
	}
	return Status{State: StateMissing}, nil
}

func (s *Store) completeSize(d digest.Digest) (int64, bool, error) {
	info, err := os.Stat(s.CompletePath(d))
	switch {
	case err == nil:
		return info.Size(), true, nil
	case errors.Is(err, fs.ErrNotExist):
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("stat complete %s: %w", d.Hex(), err)
}

// Open returns the bytes of a Complete object.
func (s *Store) Open(d digest.Digest) (io.ReadCloser, error) {
	f, err := os.Open(s.CompletePath(d))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", d.Hex(), common.ErrorNotFound)
	}
	return f, err
}

// Acquire takes the writer lease for d. The returned Writer is positioned
// after any bytes already staged; callers must Release it.
func (s *Store) Acquire(d digest.Digest) (*Writer, error) {
	s.mu.Lock()
	if _, held := s.leases[d]; held {
		s.mu.Unlock()
		s.metrics.WriteConflict()
		return nil, fmt.Errorf("%w: %s", common.ErrWriteConflict, d.Hex())
	}
	s.leases[d] = struct{}{}
	s.mu.Unlock()

	w, err := s.openWriter(d)
	if err != nil {
		s.dropLease(d)
		return nil, err
	}

	s.metrics.WriterAcquired()
	return w, nil
}

func (s *Store) openWriter(d digest.Digest) (*Writer, error) {
	lock := s.lockPath(d)
	lf, err := os.OpenFile(lock, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if errors.Is(err, fs.ErrExist) {
		s.metrics.WriteConflict()
		return nil, fmt.Errorf("%w: %s (locked by another process)", common.ErrWriteConflict, d.Hex())
	}
	if err != nil {
		return nil, fmt.Errorf("creating lock %s: %w", lock, err)
	}
	_, _ = fmt.Fprintf(lf, "%d\n", os.Getpid())
	if err := lf.Close(); err != nil {
		_ = os.Remove(lock)
		return nil, fmt.Errorf("closing lock %s: %w", lock, err)
	}

	f, err := os.OpenFile(s.partialPath(d), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		_ = os.Remove(lock)
		return nil, fmt.Errorf("opening partial %s: %w", d.Hex(), err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		_ = os.Remove(lock)
		return nil, fmt.Errorf("stat partial %s: %w", d.Hex(), err)
	}

	return &Writer{
		store:  s,
		digest: d,
		lock:   lock,
		f:      f,
		offset: info.Size(),
	}, nil
}

func (s *Store) dropLease(d digest.Digest) {
	s.mu.Lock()
	delete(s.leases, d)
	s.mu.Unlock()
}

// Append writes p at the current offset of d and returns the new offset.
// With forceRestart, or when nothing is staged, the write starts at offset
// zero. Without forceRestart a Complete object is left untouched and its
// size is returned. A digest held by another writer yields
// common.ErrWriteConflict.
func (s *Store) Append(d digest.Digest, p []byte, forceRestart bool) (offset int64, err error) {
	w, err := s.Acquire(d)
	if err != nil {
		return 0, err
	}
	defer func() {
		err = errors.Join(err, w.Release())
	}()

	if forceRestart {
		if err := w.Reset(); err != nil {
			return 0, err
		}
		return w.Append(p)
	}

	size, ok, err := s.completeSize(d)
	if err != nil {
		return 0, err
	}
	if ok {
		return size, nil
	}
	return w.Append(p)
}

// Finalize verifies the staged bytes of d and promotes them to Complete.
// On mismatch the staged bytes are discarded, StateMissing is returned and
// the error wraps common.ErrChecksumMismatch. Finalizing an object that is
// already Complete is a no-op; anything staged next to it is dropped.
func (s *Store) Finalize(d digest.Digest) (state State, err error) {
	w, err := s.Acquire(d)
	if err != nil {
		return StateMissing, err
	}
	defer func() {
		err = errors.Join(err, w.Release())
	}()

	_, ok, err := s.completeSize(d)
	if err != nil {
		return StateMissing, err
	}
	if ok {
		if err := w.Discard(); err != nil {
			return StateComplete, err
		}
		return StateComplete, nil
	}

	if err := w.Finalize(); err != nil {
		if errors.Is(err, common.ErrChecksumMismatch) {
			return StateMissing, err
		}
		return StatePartial, err
	}
	return StateComplete, nil
}
