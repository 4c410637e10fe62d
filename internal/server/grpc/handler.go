package grpc

import (
	"context"

	"github.com/dmitrijs2005/raptorboost/internal/buildinfo"
	"github.com/dmitrijs2005/raptorboost/internal/digest"
	pb "github.com/dmitrijs2005/raptorboost/internal/proto"
	"github.com/dmitrijs2005/raptorboost/internal/server/naming"
	"github.com/dmitrijs2005/raptorboost/internal/server/upload"
)

func (s *GRPCServer) GetVersion(ctx context.Context, req *pb.GetVersionRequest) (*pb.GetVersionResponse, error) {
	return &pb.GetVersionResponse{Version: buildinfo.Version}, nil
}

func (s *GRPCServer) UploadFiles(ctx context.Context, req *pb.UploadFilesRequest) (*pb.UploadFilesResponse, error) {

	digests, err := digest.ParseAll(req.GetSha256Sums())
	if err != nil {
		return nil, toStatus(err)
	}

	needs, err := s.uploads.Negotiate(ctx, digests)
	if err != nil {
		s.log(ctx).Error(ctx, "Negotiation failed", "error", err)
		return nil, toStatus(err)
	}

	results := make([]*pb.FileStateResult, 0, len(needs))
	for _, n := range needs {
		r := &pb.FileStateResult{Sha256Sum: n.Digest.Hex(), State: pb.FileState_FILE_STATE_COMPLETE}
		if n.State == upload.NeedMoreData {
			r.State = pb.FileState_FILE_STATE_NEED_MORE_DATA
			if n.Offset > 0 {
				off := uint64(n.Offset)
				r.Offset = &off
			}
		}
		results = append(results, r)
	}

	return &pb.UploadFilesResponse{Results: results}, nil
}

// streamSource adapts the ingest stream to upload.ChunkSource.
type streamSource struct {
	stream pb.RaptorBoost_SendFileDataServer
}

func (s streamSource) Recv() (*upload.Chunk, error) {
	req, err := s.stream.Recv()
	if err != nil {
		return nil, err
	}

	f := req.GetFirst()
	if f == nil {
		return &upload.Chunk{Data: req.GetData()}, nil
	}
	d, err := digest.Parse(f.GetSha256Sum())
	if err != nil {
		return nil, err
	}
	return &upload.Chunk{
		First: &upload.First{Digest: d, Force: f.GetForce()},
		Data:  f.GetData(),
	}, nil
}

func (s *GRPCServer) SendFileData(stream pb.RaptorBoost_SendFileDataServer) error {
	ctx := stream.Context()

	res, err := s.uploads.Ingest(ctx, streamSource{stream: stream})
	if err != nil {
		s.log(ctx).Warn(ctx, "Ingest stream failed", "error", err)
		return toStatus(err)
	}

	st := pb.SendFileDataStatus_SEND_FILE_DATA_STATUS_COMPLETE
	if res.Outcome == upload.OutcomeChecksumError {
		st = pb.SendFileDataStatus_SEND_FILE_DATA_STATUS_ERROR_CHECKSUM
	}
	return stream.SendAndClose(&pb.SendFileDataResponse{Status: st, Sha256Sum: res.Digest.Hex()})
}

func (s *GRPCServer) AssignNames(ctx context.Context, req *pb.AssignNamesRequest) (*pb.AssignNamesResponse, error) {

	reqs := make([]naming.Request, 0, len(req.GetAssignments()))
	for _, a := range req.GetAssignments() {
		d, err := digest.Parse(a.GetSha256Sum())
		if err != nil {
			return nil, toStatus(err)
		}
		reqs = append(reqs, naming.Request{Digest: d, Names: a.GetNames()})
	}

	res, err := s.names.AssignNames(ctx, req.GetTransferName(), req.GetForce(), reqs)
	if err != nil {
		s.log(ctx).Warn(ctx, "Name assignment rejected", "error", err)
		return nil, toStatus(err)
	}

	results := make([]*pb.AssignNameResult, 0, len(res.Assignments))
	for _, a := range res.Assignments {
		r := &pb.AssignNameResult{Name: a.Name, Sha256Sum: a.Digest.Hex()}
		switch a.Outcome {
		case naming.OutcomeSuccess:
			r.Status = pb.AssignNameStatus_ASSIGN_NAME_STATUS_SUCCESS
		case naming.OutcomeAlreadyExists:
			r.Status = pb.AssignNameStatus_ASSIGN_NAME_STATUS_ALREADY_EXISTS
		default:
			r.Status = pb.AssignNameStatus_ASSIGN_NAME_STATUS_ERROR
			if a.Err != nil {
				r.Error = a.Err.Error()
			}
		}
		results = append(results, r)
	}

	return &pb.AssignNamesResponse{Results: results, TransferName: res.Transfer}, nil
}

func (s *GRPCServer) ListTransfer(ctx context.Context, req *pb.ListTransferRequest) (*pb.ListTransferResponse, error) {

	bindings, err := s.names.List(ctx, req.GetTransferName())
	if err != nil {
		return nil, toStatus(err)
	}

	entries := make([]*pb.TransferEntry, 0, len(bindings))
	for _, b := range bindings {
		entries = append(entries, &pb.TransferEntry{
			Name:            b.Name,
			Sha256Sum:       b.Digest.Hex(),
			BoundAtUnixNano: b.BoundAt.UnixNano(),
		})
	}
	return &pb.ListTransferResponse{Entries: entries}, nil
}
