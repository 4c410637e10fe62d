package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/raptorboost/internal/common"
	"github.com/dmitrijs2005/raptorboost/internal/digest"
	"github.com/dmitrijs2005/raptorboost/internal/filex"
	"github.com/dmitrijs2005/raptorboost/internal/server/metrics"
)

const completeMode fs.FileMode = 0o444

var errWriterClosed = errors.New("writer already finalized or released")

// Writer owns the lease on one digest. It is not safe for concurrent use;
// the lease exists precisely so that only one goroutine writes a digest.
type Writer struct {
	store  *Store
	digest digest.Digest
	lock   string

	f        *os.File // nil after Finalize
	offset   int64
	released bool
}

// Digest returns the digest this writer stages.
func (w *Writer) Digest() digest.Digest {
	return w.digest
}

// Offset is the number of bytes currently staged.
func (w *Writer) Offset() int64 {
	return w.offset
}

// Discard drops everything staged so far. A complete entry is kept.
func (w *Writer) Discard() error {
	if w.f == nil || w.released {
		return errWriterClosed
	}
	if err := w.f.Truncate(0); err != nil {
		return fmt.Errorf("truncating partial %s: %w", w.digest.Hex(), err)
	}
	w.offset = 0
	return nil
}

// Reset discards everything staged so far and, for an object that was
// already Complete, removes the complete entry so the object is restaged
// from Missing. Names already linked to the old entry keep their bytes.
func (w *Writer) Reset() error {
	if err := w.Discard(); err != nil {
		return err
	}

	err := os.Remove(w.store.CompletePath(w.digest))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing complete %s: %w", w.digest.Hex(), err)
	}
	return nil
}

// Append stages p after the bytes already written and returns the new
// offset. On a short write the offset reflects what actually landed.
func (w *Writer) Append(p []byte) (int64, error) {
	if w.f == nil || w.released {
		return w.offset, errWriterClosed
	}
	n, err := w.f.Write(p)
	w.offset += int64(n)
	w.store.metrics.BytesStaged(n)
	if err != nil {
		return w.offset, fmt.Errorf("appending to %s: %w", w.digest.Hex(), err)
	}
	return w.offset, nil
}

// Finalize hashes the staged bytes. On a match they are flushed and
// atomically renamed into complete/. On a mismatch they are deleted, the
// object reverts to Missing and the error wraps common.ErrChecksumMismatch.
// Either way the writer accepts no more bytes; Release is still required.
func (w *Writer) Finalize() error {
	if w.f == nil || w.released {
		return errWriterClosed
	}
	ctx := context.Background()
	partial := w.store.partialPath(w.digest)

	if err := w.f.Sync(); err != nil {
		return fmt.Errorf("syncing partial %s: %w", w.digest.Hex(), err)
	}
	if err := w.f.Close(); err != nil {
		return fmt.Errorf("closing partial %s: %w", w.digest.Hex(), err)
	}
	w.f = nil

	got, size, err := digest.FromFile(partial)
	if err != nil {
		return fmt.Errorf("hashing partial %s: %w", w.digest.Hex(), err)
	}

	if got != w.digest {
		if err := os.Remove(partial); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("discarding partial %s: %w", w.digest.Hex(), err)
		}
		w.offset = 0
		w.store.metrics.Finalized(metrics.ResultChecksumMismatch)
		w.store.logger.Warn(ctx, "Checksum mismatch, staged bytes discarded",
			"sha256", w.digest.Hex(), "actual", got.Hex(), "size", size)
		return fmt.Errorf("%w: %d bytes staged for %s hash to %s",
			common.ErrChecksumMismatch, size, w.digest.Hex(), got.Hex())
	}

	// Complete objects are shared with every name linked to them.
	if err := os.Chmod(partial, completeMode); err != nil {
		return fmt.Errorf("sealing %s: %w", w.digest.Hex(), err)
	}
	complete := w.store.CompletePath(w.digest)
	if err := os.Rename(partial, complete); err != nil {
		_ = os.Chmod(partial, 0o644)
		return fmt.Errorf("promoting %s: %w", w.digest.Hex(), err)
	}
	if err := filex.SyncDir(filepath.Dir(complete)); err != nil {
		w.store.logger.Warn(ctx, "Directory sync failed", "dir", filepath.Dir(complete), "error", err)
	}

	w.store.metrics.Finalized(metrics.ResultComplete)
	w.store.logger.Info(ctx, "Object complete", "sha256", w.digest.Hex(), "size", size)
	return nil
}

// Release flushes staged bytes and gives up the lease. Whatever was staged
// stays Partial and can be resumed later. An empty staging file is removed
// so an object that never received a byte stays Missing.
func (w *Writer) Release() error {
	if w.released {
		return nil
	}
	w.released = true

	var errs []error
	if w.f != nil {
		errs = append(errs, w.f.Sync(), w.f.Close())
		w.f = nil
		if w.offset == 0 {
			if err := os.Remove(w.store.partialPath(w.digest)); err != nil && !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, err)
			}
		}
	}
	if err := os.Remove(w.lock); err != nil && !errors.Is(err, fs.ErrNotExist) {
		errs = append(errs, err)
	}

	w.store.dropLease(w.digest)
	w.store.metrics.WriterReleased()

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("releasing %s: %w", w.digest.Hex(), err)
	}
	return nil
}
