package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/raptorboost/internal/common"
	"github.com/dmitrijs2005/raptorboost/internal/digest"
	pb "github.com/dmitrijs2005/raptorboost/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var _ Client = (*GRPCClient)(nil)

type GRPCClient struct {
	conn      *grpc.ClientConn
	client    pb.RaptorBoostClient
	chunkSize int
}

type Option func(*GRPCClient)

// WithChunkSize sets the payload size of a single SendFileData message.
func WithChunkSize(n int) Option {
	return func(c *GRPCClient) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

func withRequestID(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) > 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
}

func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withRequestID(ctx), method, req, reply, cc, opts...)
}

func requestIDStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(withRequestID(ctx), desc, cc, method, opts...)
}

// NewRaptorBoostClient connects to the plaintext endpoint at endpointURL.
func NewRaptorBoostClient(endpointURL string, opts ...Option) (*GRPCClient, error) {
	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
		grpc.WithStreamInterceptor(requestIDStreamInterceptor),
	)
	if err != nil {
		return nil, err
	}
	c := NewFromConn(conn, opts...)
	c.conn = conn
	return c, nil
}

// NewFromConn builds a client over an existing connection. Close does not
// close cc.
func NewFromConn(cc grpc.ClientConnInterface, opts ...Option) *GRPCClient {
	c := &GRPCClient{client: pb.NewRaptorBoostClient(cc), chunkSize: common.DefaultChunkSize}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Version(ctx context.Context) (string, error) {
	resp, err := s.client.GetVersion(ctx, &pb.GetVersionRequest{})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetVersion(), nil
}

func (s *GRPCClient) Negotiate(ctx context.Context, digests []digest.Digest) ([]Need, error) {
	req := &pb.UploadFilesRequest{Sha256Sums: make([]string, 0, len(digests))}
	for _, d := range digests {
		req.Sha256Sums = append(req.Sha256Sums, d.Hex())
	}

	resp, err := s.client.UploadFiles(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	if len(resp.GetResults()) != len(digests) {
		return nil, fmt.Errorf("server answered %d of %d digests", len(resp.GetResults()), len(digests))
	}

	needs := make([]Need, 0, len(digests))
	for i, r := range resp.GetResults() {
		needs = append(needs, Need{
			Digest:   digests[i],
			Complete: r.GetState() == pb.FileState_FILE_STATE_COMPLETE,
			Offset:   int64(r.GetOffset()),
		})
	}
	return needs, nil
}

// Send streams objects in order over one SendFileData call. The server only
// reports on the last object; callers that need a verdict per object send
// them one at a time.
func (s *GRPCClient) Send(ctx context.Context, objects []Object) (SendResult, error) {
	if len(objects) == 0 {
		return SendResult{}, ErrNoObjects
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := s.client.SendFileData(ctx)
	if err != nil {
		return SendResult{}, s.mapError(err)
	}

	for _, o := range objects {
		if err := s.sendObject(stream, o); err != nil {
			if errors.Is(err, io.EOF) {
				// The server ended the stream; its status is on CloseAndRecv.
				_, err = stream.CloseAndRecv()
				return SendResult{}, s.mapError(err)
			}
			return SendResult{}, err
		}
	}

	resp, err := stream.CloseAndRecv()
	if err != nil {
		return SendResult{}, s.mapError(err)
	}

	d, err := digest.Parse(resp.GetSha256Sum())
	if err != nil {
		return SendResult{}, fmt.Errorf("server reported digest %q: %w", resp.GetSha256Sum(), err)
	}

	return SendResult{
		Digest:        d,
		ChecksumError: resp.GetStatus() == pb.SendFileDataStatus_SEND_FILE_DATA_STATUS_ERROR_CHECKSUM,
	}, nil
}

func (s *GRPCClient) sendObject(stream pb.RaptorBoost_SendFileDataClient, o Object) error {
	f, err := os.Open(o.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	offset := o.Offset
	if o.Force {
		offset = 0
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("seeking %s to %d: %w", o.Path, offset, err)
	}

	first := true
	for {
		// A sent message must not be modified, so every chunk gets its own buffer.
		buf := make([]byte, s.chunkSize)
		n, rerr := io.ReadFull(f, buf)
		if rerr != nil && !errors.Is(rerr, io.EOF) && !errors.Is(rerr, io.ErrUnexpectedEOF) {
			return fmt.Errorf("reading %s: %w", o.Path, rerr)
		}

		if first || n > 0 {
			req := &pb.SendFileDataRequest{}
			if first {
				req.Payload = &pb.SendFileDataRequest_First{
					First: &pb.FirstChunk{Sha256Sum: o.Digest.Hex(), Force: o.Force, Data: buf[:n]},
				}
				first = false
			} else {
				req.Payload = &pb.SendFileDataRequest_Data{Data: buf[:n]}
			}
			if err := stream.Send(req); err != nil {
				return err
			}
		}

		if rerr != nil {
			return nil
		}
	}
}

func (s *GRPCClient) AssignNames(ctx context.Context, transfer string, force bool, reqs []NameRequest) (string, []NameResult, error) {
	req := &pb.AssignNamesRequest{Assignments: make([]*pb.NameAssignment, 0, len(reqs))}
	if transfer != "" {
		req.TransferName = &transfer
	}
	if force {
		req.Force = &force
	}
	for _, r := range reqs {
		req.Assignments = append(req.Assignments, &pb.NameAssignment{Sha256Sum: r.Digest.Hex(), Names: r.Names})
	}

	resp, err := s.client.AssignNames(ctx, req)
	if err != nil {
		return "", nil, s.mapError(err)
	}

	results := make([]NameResult, 0, len(resp.GetResults()))
	for _, r := range resp.GetResults() {
		results = append(results, NameResult{
			Name:   r.GetName(),
			Digest: r.Sha256Sum,
			Status: nameStatus(r.GetStatus()),
			Error:  r.Error,
		})
	}
	return resp.GetTransferName(), results, nil
}

func nameStatus(st pb.AssignNameStatus) NameStatus {
	switch st {
	case pb.AssignNameStatus_ASSIGN_NAME_STATUS_SUCCESS:
		return NameStatusSuccess
	case pb.AssignNameStatus_ASSIGN_NAME_STATUS_ALREADY_EXISTS:
		return NameStatusAlreadyExists
	case pb.AssignNameStatus_ASSIGN_NAME_STATUS_ERROR:
		return NameStatusError
	}
	return NameStatusUnknown
}

func (s *GRPCClient) ListTransfer(ctx context.Context, transfer string) ([]Entry, error) {
	resp, err := s.client.ListTransfer(ctx, &pb.ListTransferRequest{TransferName: transfer})
	if err != nil {
		return nil, s.mapError(err)
	}

	entries := make([]Entry, 0, len(resp.GetEntries()))
	for _, e := range resp.GetEntries() {
		d, err := digest.Parse(e.Sha256Sum)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Name, err)
		}
		entries = append(entries, Entry{Name: e.Name, Digest: d, BoundAt: time.Unix(0, e.BoundAtUnixNano)})
	}
	return entries, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Aborted:
		return fmt.Errorf("%w: %s", common.ErrWriteConflict, st.Message())
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", common.ErrIncompleteObject, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrInvalidArgument, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
