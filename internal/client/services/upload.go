package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/raptorboost/internal/client/client"
	"github.com/dmitrijs2005/raptorboost/internal/common"
	"github.com/dmitrijs2005/raptorboost/internal/digest"
	"github.com/dmitrijs2005/raptorboost/internal/logging"
	"golang.org/x/sync/errgroup"
)

const defaultParallelism = 4

// File is a local file prepared for upload. Name is the name it gets inside
// the transfer.
type File struct {
	Path   string
	Name   string
	Digest digest.Digest
	Size   int64
}

// Report summarizes one upload run.
type Report struct {
	Transfer string
	Sent     []digest.Digest
	Skipped  []digest.Digest
	Names    []client.NameResult
}

type UploadService interface {
	Prepare(paths []string) ([]File, error)
	Upload(ctx context.Context, files []File, force bool) (sent, skipped []digest.Digest, err error)
	Assign(ctx context.Context, transfer string, force bool, files []File) (string, []client.NameResult, error)
	Run(ctx context.Context, paths []string, transfer string, force bool) (*Report, error)
}

type uploadService struct {
	client      client.Client
	logger      logging.Logger
	parallelism int
}

func NewUploadService(c client.Client, l logging.Logger, parallelism int) UploadService {
	if parallelism <= 0 {
		parallelism = defaultParallelism
	}
	return &uploadService{client: c, logger: l, parallelism: parallelism}
}

// Prepare hashes every path. The transfer name of a file is its base name.
func (s *uploadService) Prepare(paths []string) ([]File, error) {
	files := make([]File, 0, len(paths))
	for _, p := range paths {
		d, size, err := digest.FromFile(p)
		if err != nil {
			return nil, fmt.Errorf("hashing %s: %w", p, err)
		}
		files = append(files, File{Path: p, Name: filepath.Base(p), Digest: d, Size: size})
	}
	return files, nil
}

// Upload makes every distinct digest of files complete on the server. Each
// object goes over its own stream so that a checksum error is attributed to
// the right file.
func (s *uploadService) Upload(ctx context.Context, files []File, force bool) ([]digest.Digest, []digest.Digest, error) {
	unique := make([]File, 0, len(files))
	seen := make(map[digest.Digest]bool, len(files))
	for _, f := range files {
		if !seen[f.Digest] {
			seen[f.Digest] = true
			unique = append(unique, f)
		}
	}
	if len(unique) == 0 {
		return nil, nil, nil
	}

	digests := make([]digest.Digest, 0, len(unique))
	for _, f := range unique {
		digests = append(digests, f.Digest)
	}

	needs, err := s.client.Negotiate(ctx, digests)
	if err != nil {
		return nil, nil, fmt.Errorf("negotiate: %w", err)
	}

	var sent, skipped []digest.Digest
	var objects []client.Object
	for i, n := range needs {
		if n.Complete && !force {
			skipped = append(skipped, n.Digest)
			continue
		}
		sent = append(sent, n.Digest)
		objects = append(objects, client.Object{Digest: n.Digest, Path: unique[i].Path, Offset: n.Offset, Force: force})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for _, o := range objects {
		g.Go(func() error {
			s.logger.Debug(gctx, "sending object", "sha256", o.Digest.Hex(), "path", o.Path, "offset", o.Offset)
			res, err := s.client.Send(gctx, []client.Object{o})
			if err != nil {
				return fmt.Errorf("sending %s: %w", o.Path, err)
			}
			if res.ChecksumError {
				return fmt.Errorf("sending %s: %w", o.Path, common.ErrChecksumMismatch)
			}
			s.logger.Info(gctx, "object complete", "sha256", o.Digest.Hex(), "path", o.Path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return sent, skipped, nil
}

// Assign binds every file to its name inside transfer. An empty transfer
// lets the server pick one; the name it used is returned.
func (s *uploadService) Assign(ctx context.Context, transfer string, force bool, files []File) (string, []client.NameResult, error) {
	var reqs []client.NameRequest
	index := make(map[digest.Digest]int)
	for _, f := range files {
		i, ok := index[f.Digest]
		if !ok {
			i = len(reqs)
			index[f.Digest] = i
			reqs = append(reqs, client.NameRequest{Digest: f.Digest})
		}
		reqs[i].Names = append(reqs[i].Names, f.Name)
	}

	return s.client.AssignNames(ctx, transfer, force, reqs)
}

// Run is Prepare, Upload and Assign in sequence. Names that could not be
// bound are reported in the result and as a joined error.
func (s *uploadService) Run(ctx context.Context, paths []string, transfer string, force bool) (*Report, error) {
	files, err := s.Prepare(paths)
	if err != nil {
		return nil, err
	}

	sent, skipped, err := s.Upload(ctx, files, force)
	if err != nil {
		return nil, err
	}

	name, results, err := s.Assign(ctx, transfer, force, files)
	if err != nil {
		return nil, fmt.Errorf("assign names: %w", err)
	}

	var errs []error
	for _, r := range results {
		if r.Status != client.NameStatusSuccess {
			errs = append(errs, fmt.Errorf("%s: %s %s", r.Name, r.Status, r.Error))
		}
	}

	return &Report{Transfer: name, Sent: sent, Skipped: skipped, Names: results}, errors.Join(errs...)
}
