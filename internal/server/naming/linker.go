// Package naming projects completed content objects into per-transfer
// directory trees.
//
// A name is a hard link to the object's file in the content store, so a
// transfer directory costs no extra bytes and stays valid even if the store
// later restages the object. Transfer directories live under
// <base>/transfers and are never deleted here.
package naming

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/raptorboost/internal/common"
	"github.com/dmitrijs2005/raptorboost/internal/digest"
	"github.com/dmitrijs2005/raptorboost/internal/filex"
	"github.com/dmitrijs2005/raptorboost/internal/logging"
	"github.com/dmitrijs2005/raptorboost/internal/server/ledger"
	"github.com/dmitrijs2005/raptorboost/internal/server/metrics"
	"github.com/dmitrijs2005/raptorboost/internal/server/store"
	"github.com/google/uuid"
)

const transfersDir = "transfers"

// Outcome of binding a single name.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeAlreadyExists
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeAlreadyExists:
		return "already_exists"
	default:
		return "error"
	}
}

// Request asks for Names to be bound to Digest.
type Request struct {
	Digest digest.Digest
	Names  []string
}

// Assignment is the per-name result. Err is set for OutcomeError only.
type Assignment struct {
	Name    string
	Digest  digest.Digest
	Outcome Outcome
	Err     error
}

// Result carries the resolved transfer name, which is generated when the
// caller gave none.
type Result struct {
	Transfer    string
	Assignments []Assignment
}

type Linker struct {
	root    string
	store   *store.Store
	ledger  ledger.Repository
	logger  logging.Logger
	metrics *metrics.Metrics

	now   func() time.Time
	newID func() string
}

// NewLinker creates <base>/transfers if needed.
func NewLinker(base string, s *store.Store, r ledger.Repository, l logging.Logger, m *metrics.Metrics) (*Linker, error) {
	if err := filex.EnsureDirs(base, transfersDir); err != nil {
		return nil, fmt.Errorf("creating transfers directory: %w", err)
	}
	root := filepath.Join(base, transfersDir)
	return &Linker{
		root:    root,
		store:   s,
		ledger:  r,
		logger:  l.With("module", "naming"),
		metrics: m,
		now:     time.Now,
		newID:   uuid.NewString,
	}, nil
}

// TransferPath is the directory holding the names of a transfer.
func (l *Linker) TransferPath(transfer string) string {
	return filepath.Join(l.root, transfer)
}

// ValidateTransfer accepts a single, clean path component.
func ValidateTransfer(transfer string) error {
	if transfer == "" || transfer == "." || transfer == ".." ||
		strings.ContainsAny(transfer, "/\\\x00") {
		return fmt.Errorf("%w: transfer %q", common.ErrInvalidName, transfer)
	}
	return nil
}

// ValidateName accepts clean relative slash-separated paths that stay inside
// the transfer directory.
func ValidateName(name string) error {
	if name == "" || strings.ContainsAny(name, "\\\x00") ||
		path.IsAbs(name) || path.Clean(name) != name || name == "." {
		return fmt.Errorf("%w: %q", common.ErrInvalidName, name)
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return fmt.Errorf("%w: %q escapes the transfer directory", common.ErrInvalidName, name)
		}
	}
	return nil
}

// AssignNames binds every requested name inside the transfer directory.
//
// All digests must be Complete, otherwise nothing is bound and the error
// wraps common.ErrIncompleteObject. Past that point each name is handled on
// its own: an invalid name or a filesystem failure is reported as
// OutcomeError without stopping the others, and an existing name is
// reported as AlreadyExists unless force is set.
func (l *Linker) AssignNames(ctx context.Context, transfer string, force bool, reqs []Request) (Result, error) {
	if transfer == "" {
		transfer = l.newID()
	}
	if err := ValidateTransfer(transfer); err != nil {
		return Result{}, err
	}

	total := 0
	for _, r := range reqs {
		st, err := l.store.Query(r.Digest)
		if err != nil {
			return Result{}, err
		}
		if st.State != store.StateComplete {
			return Result{}, fmt.Errorf("%w: %s is %s", common.ErrIncompleteObject, r.Digest.Hex(), st.State)
		}
		total += len(r.Names)
	}

	dir := l.TransferPath(transfer)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating transfer directory %s: %w", transfer, err)
	}

	res := Result{Transfer: transfer, Assignments: make([]Assignment, 0, total)}
	for _, r := range reqs {
		for _, name := range r.Names {
			a := l.bind(ctx, dir, transfer, name, r.Digest, force)
			l.metrics.NameAssigned(a.Outcome.String())
			res.Assignments = append(res.Assignments, a)
		}
	}

	l.logger.Info(ctx, "Names assigned", "transfer", transfer, "names", total, "force", force)
	return res, nil
}

func (l *Linker) bind(ctx context.Context, dir, transfer, name string, d digest.Digest, force bool) Assignment {
	a := Assignment{Name: name, Digest: d}
	if err := ValidateName(name); err != nil {
		a.Outcome = OutcomeError
		a.Err = err
		l.logger.Warn(ctx, "Rejected name", "transfer", transfer, "name", name, "error", err)
		return a
	}

	target := filepath.Join(dir, filepath.FromSlash(name))
	src := l.store.CompletePath(d)

	err := os.MkdirAll(filepath.Dir(target), 0o755)
	if err == nil {
		if force {
			err = replaceLink(src, target, l.newID())
		} else {
			err = os.Link(src, target)
		}
	}

	if err == nil {
		err = filex.SyncDir(filepath.Dir(target))
	}

	switch {
	case err == nil:
		a.Outcome = OutcomeSuccess
	case !force && errors.Is(err, fs.ErrExist):
		a.Outcome = OutcomeAlreadyExists
		l.logger.Debug(ctx, "Name already bound", "transfer", transfer, "name", name)
		return a
	default:
		a.Outcome = OutcomeError
		a.Err = err
		l.logger.Error(ctx, "Binding name failed", "transfer", transfer, "name", name, "error", err)
		return a
	}

	b := ledger.Binding{Transfer: transfer, Name: name, Digest: d, BoundAt: l.now().UTC()}
	if err := l.ledger.Record(ctx, b); err != nil {
		l.logger.Error(ctx, "Recording binding failed", "transfer", transfer, "name", name, "error", err)
	}
	return a
}

// replaceLink links src next to target and renames it over target, so the
// name always refers to either the old or the new object.
func replaceLink(src, target, id string) error {
	tmp := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+".rb-"+id)
	if err := os.Link(src, tmp); err != nil {
		return err
	}
	err := os.Rename(tmp, target)
	// Renaming onto a link of the same inode succeeds without removing tmp.
	if rerr := os.Remove(tmp); rerr != nil && !errors.Is(rerr, fs.ErrNotExist) && err == nil {
		err = rerr
	}
	return err
}

// List returns the recorded bindings of a transfer.
func (l *Linker) List(ctx context.Context, transfer string) ([]ledger.Binding, error) {
	if err := ValidateTransfer(transfer); err != nil {
		return nil, err
	}
	if _, err := os.Stat(l.TransferPath(transfer)); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("transfer %s: %w", transfer, common.ErrorNotFound)
	}
	return l.ledger.List(ctx, transfer)
}
