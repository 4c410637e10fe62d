package proto

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	protobuf "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
)

func roundTrip[M protobuf.Message](t *testing.T, in M, out M) M {
	t.Helper()
	b, err := protobuf.Marshal(in)
	require.NoError(t, err)
	require.NoError(t, protobuf.Unmarshal(b, out))
	if diff := cmp.Diff(in, out, protocmp.Transform()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	return out
}

func TestGetVersionResponse_CanonicalBytes(t *testing.T) {
	b, err := protobuf.Marshal(&GetVersionResponse{Version: "0.1.0"})
	require.NoError(t, err)
	// field 1, wire type 2, length 5
	assert.Equal(t, []byte{0x0a, 0x05, '0', '.', '1', '.', '0'}, b)

	b, err = protobuf.Marshal(&GetVersionResponse{})
	require.NoError(t, err)
	assert.Empty(t, b, "proto3 defaults are not encoded")
}

func TestFileStateResult_OffsetPresence(t *testing.T) {
	zero := uint64(0)
	out := roundTrip(t, &FileStateResult{Sha256Sum: "ab", State: FileState_FILE_STATE_NEED_MORE_DATA, Offset: &zero}, &FileStateResult{})
	require.NotNil(t, out.Offset, "explicit zero offset keeps presence")
	assert.Equal(t, uint64(0), out.GetOffset())

	out = roundTrip(t, &FileStateResult{Sha256Sum: "ab", State: FileState_FILE_STATE_COMPLETE}, &FileStateResult{})
	assert.Nil(t, out.Offset)
	assert.Equal(t, FileState_FILE_STATE_COMPLETE, out.GetState())
}

func TestSendFileDataRequest_Oneof(t *testing.T) {
	first := &SendFileDataRequest{Payload: &SendFileDataRequest_First{
		First: &FirstChunk{Sha256Sum: "d", Force: true, Data: []byte("abc")},
	}}
	got := roundTrip(t, first, &SendFileDataRequest{})
	assert.True(t, got.GetFirst().GetForce())
	assert.Nil(t, got.GetData())

	// Last oneof member on the wire wins.
	b, err := protobuf.Marshal(first)
	require.NoError(t, err)
	b = protowire.AppendBytes(protowire.AppendTag(b, 2, protowire.BytesType), []byte("tail"))
	got = &SendFileDataRequest{}
	require.NoError(t, protobuf.Unmarshal(b, got))
	assert.Nil(t, got.GetFirst())
	assert.Equal(t, []byte("tail"), got.GetData())

	// An empty data member is still a continuation, not a missing payload.
	got = roundTrip(t, &SendFileDataRequest{Payload: &SendFileDataRequest_Data{Data: []byte{}}}, &SendFileDataRequest{})
	assert.IsType(t, &SendFileDataRequest_Data{}, got.GetPayload())
	assert.Nil(t, got.GetFirst())
}

func TestUnmarshal_CopiesBytes(t *testing.T) {
	b, err := protobuf.Marshal(&SendFileDataRequest{Payload: &SendFileDataRequest_Data{Data: []byte("payload")}})
	require.NoError(t, err)

	var got SendFileDataRequest
	require.NoError(t, protobuf.Unmarshal(b, &got))
	for i := range b {
		b[i] = 0
	}
	assert.Equal(t, []byte("payload"), got.GetData())
}

func TestAssignNamesRequest_RoundTrip(t *testing.T) {
	name := "alice-2024"
	force := false
	out := roundTrip(t, &AssignNamesRequest{
		TransferName: &name,
		Force:        &force,
		Assignments: []*NameAssignment{
			{Sha256Sum: "aa", Names: []string{"report.pdf", "copy/report.pdf"}},
			{Sha256Sum: "bb", Names: []string{"b"}},
		},
	}, &AssignNamesRequest{})
	require.NotNil(t, out.Force)
	assert.False(t, out.GetForce())
	assert.Equal(t, "alice-2024", out.GetTransferName())
}

func TestUnmarshal_KeepsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 99, protowire.VarintType)
	b = protowire.AppendVarint(b, 12345)
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "1.2.3")

	var got GetVersionResponse
	require.NoError(t, protobuf.Unmarshal(b, &got))
	assert.Equal(t, "1.2.3", got.GetVersion())
	assert.NotEmpty(t, got.ProtoReflect().GetUnknown())
}

func TestUnmarshal_Errors(t *testing.T) {
	var got UploadFilesResponse
	assert.Error(t, protobuf.Unmarshal([]byte{0x0a, 0x10, 0x01}, &got), "truncated length-delimited field")

	var wrongType GetVersionResponse
	b := protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 7)
	assert.Error(t, protobuf.Unmarshal(b, &wrongType))
}

func TestEnums(t *testing.T) {
	assert.Equal(t, "SEND_FILE_DATA_STATUS_ERROR_CHECKSUM", SendFileDataStatus_SEND_FILE_DATA_STATUS_ERROR_CHECKSUM.String())
	assert.Equal(t, "FILE_STATE_NEED_MORE_DATA", FileState_FILE_STATE_NEED_MORE_DATA.String())
	assert.Equal(t, int32(2), AssignNameStatus_value["ASSIGN_NAME_STATUS_ALREADY_EXISTS"])
	assert.Equal(t, "42", AssignNameStatus(42).String())
}

func TestListTransferResponse_NegativeTimestamp(t *testing.T) {
	out := roundTrip(t, &ListTransferResponse{Entries: []*TransferEntry{{Name: "n", Sha256Sum: "s", BoundAtUnixNano: -1}}}, &ListTransferResponse{})
	assert.Equal(t, int64(-1), out.GetEntries()[0].GetBoundAtUnixNano())
}

func TestFileDescriptor(t *testing.T) {
	fd := File_raptorboost_proto
	assert.Equal(t, "raptorboost", string(fd.Package()))
	svc := fd.Services().ByName("RaptorBoost")
	require.NotNil(t, svc)
	assert.Equal(t, RaptorBoost_ServiceDesc.ServiceName, string(svc.FullName()))
	assert.True(t, svc.Methods().ByName("SendFileData").IsStreamingClient())
	assert.Equal(t, 5, svc.Methods().Len())
}
