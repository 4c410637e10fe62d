package naming

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/raptorboost/internal/common"
	"github.com/dmitrijs2005/raptorboost/internal/digest"
	"github.com/dmitrijs2005/raptorboost/internal/logging"
	"github.com/dmitrijs2005/raptorboost/internal/server/ledger"
	"github.com/dmitrijs2005/raptorboost/internal/server/store"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	base   string
	store  *store.Store
	ledger *ledger.MemoryRepository
	linker *Linker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	base := t.TempDir()
	s, err := store.New(filepath.Join(base, "store"), logging.Discard(), nil)
	require.NoError(t, err)
	r := ledger.NewMemoryRepository()
	l, err := NewLinker(base, s, r, logging.Discard(), nil)
	require.NoError(t, err)
	l.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }
	return &fixture{base: base, store: s, ledger: r, linker: l}
}

func (f *fixture) put(t *testing.T, content string) digest.Digest {
	t.Helper()
	d := digest.FromBytes([]byte(content))
	_, err := f.store.Append(d, []byte(content), false)
	require.NoError(t, err)
	_, err = f.store.Finalize(d)
	require.NoError(t, err)
	return d
}

func (f *fixture) read(t *testing.T, transfer, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(f.linker.TransferPath(transfer), filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(b)
}

func outcomes(as []Assignment) map[string]Outcome {
	m := make(map[string]Outcome, len(as))
	for _, a := range as {
		m[a.Name] = a.Outcome
	}
	return m
}

func TestAssignNames_EndToEndScenario(t *testing.T) {
	f := newFixture(t)
	d := f.put(t, "%PDF-1.7 report")

	res, err := f.linker.AssignNames(context.Background(), "alice-2024", false, []Request{
		{Digest: d, Names: []string{"report.pdf"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "alice-2024", res.Transfer)
	assert.Equal(t, []Assignment{{Name: "report.pdf", Digest: d, Outcome: OutcomeSuccess}}, res.Assignments)
	assert.Equal(t, "%PDF-1.7 report", f.read(t, "alice-2024", "report.pdf"))

	// The name shares the store's inode rather than copying bytes.
	nameInfo, err := os.Stat(filepath.Join(f.linker.TransferPath("alice-2024"), "report.pdf"))
	require.NoError(t, err)
	storeInfo, err := os.Stat(f.store.CompletePath(d))
	require.NoError(t, err)
	assert.True(t, os.SameFile(nameInfo, storeInfo))
}

func TestAssignNames_ConflictAndForce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.put(t, "version A")
	b := f.put(t, "version B")

	_, err := f.linker.AssignNames(ctx, "t", false, []Request{{Digest: a, Names: []string{"N"}}})
	require.NoError(t, err)

	res, err := f.linker.AssignNames(ctx, "t", false, []Request{{Digest: b, Names: []string{"N"}}})
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyExists, res.Assignments[0].Outcome)
	assert.Equal(t, "version A", f.read(t, "t", "N"))

	res, err = f.linker.AssignNames(ctx, "t", true, []Request{{Digest: b, Names: []string{"N"}}})
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, res.Assignments[0].Outcome)
	assert.Equal(t, "version B", f.read(t, "t", "N"))

	bindings, err := f.linker.List(ctx, "t")
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, b, bindings[0].Digest)

	entries, err := os.ReadDir(f.linker.TransferPath("t"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary links left behind")
}

func TestAssignNames_ForceSameDigestLeavesNoTemp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	d := f.put(t, "same")

	for i := 0; i < 2; i++ {
		res, err := f.linker.AssignNames(ctx, "t", true, []Request{{Digest: d, Names: []string{"x"}}})
		require.NoError(t, err)
		require.Equal(t, OutcomeSuccess, res.Assignments[0].Outcome)
	}

	entries, err := os.ReadDir(f.linker.TransferPath("t"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAssignNames_BatchPartialSuccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	d1 := f.put(t, "one")
	d2 := f.put(t, "two")

	_, err := f.linker.AssignNames(ctx, "t", false, []Request{{Digest: d1, Names: []string{"b.txt"}}})
	require.NoError(t, err)

	res, err := f.linker.AssignNames(ctx, "t", false, []Request{
		{Digest: d1, Names: []string{"a.txt", "b.txt"}},
		{Digest: d2, Names: []string{"c.txt"}},
	})
	require.NoError(t, err)

	want := map[string]Outcome{
		"a.txt": OutcomeSuccess,
		"b.txt": OutcomeAlreadyExists,
		"c.txt": OutcomeSuccess,
	}
	if diff := cmp.Diff(want, outcomes(res.Assignments)); diff != "" {
		t.Fatalf("outcomes mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "two", f.read(t, "t", "c.txt"))
}

func TestAssignNames_SameContentManyNames(t *testing.T) {
	f := newFixture(t)
	d := f.put(t, "dedup")

	res, err := f.linker.AssignNames(context.Background(), "t", false, []Request{
		{Digest: d, Names: []string{"one", "dir/two", "dir/sub/three"}},
	})
	require.NoError(t, err)
	for _, a := range res.Assignments {
		assert.Equal(t, OutcomeSuccess, a.Outcome, a.Name)
	}
	assert.Equal(t, "dedup", f.read(t, "t", "dir/sub/three"))
}

func TestAssignNames_PerNameErrorDoesNotAbort(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	d := f.put(t, "content")

	// "blocker" is a regular file, so "blocker/child" cannot be created.
	_, err := f.linker.AssignNames(ctx, "t", false, []Request{{Digest: d, Names: []string{"blocker"}}})
	require.NoError(t, err)

	res, err := f.linker.AssignNames(ctx, "t", false, []Request{
		{Digest: d, Names: []string{"blocker/child", "fine"}},
	})
	require.NoError(t, err)
	require.Len(t, res.Assignments, 2)
	assert.Equal(t, OutcomeError, res.Assignments[0].Outcome)
	assert.Error(t, res.Assignments[0].Err)
	assert.Equal(t, OutcomeSuccess, res.Assignments[1].Outcome)
}

func TestAssignNames_IncompleteDigestFailsWholeCall(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	good := f.put(t, "good")

	partial := digest.FromBytes([]byte("partial content"))
	_, err := f.store.Append(partial, []byte("partial"), false)
	require.NoError(t, err)

	_, err = f.linker.AssignNames(ctx, "t", false, []Request{
		{Digest: good, Names: []string{"good"}},
		{Digest: partial, Names: []string{"partial"}},
	})
	require.ErrorIs(t, err, common.ErrIncompleteObject)

	_, err = os.Stat(filepath.Join(f.linker.TransferPath("t"), "good"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "nothing is bound when a precondition fails")
}

func TestAssignNames_InvalidInput(t *testing.T) {
	f := newFixture(t)
	d := f.put(t, "x")

	for _, name := range []string{"", "/etc/passwd", "../escape", "a/../../b", "a//b", "./a", ".", "a/", "nul\x00"} {
		res, err := f.linker.AssignNames(context.Background(), "t", false, []Request{{Digest: d, Names: []string{name}}})
		require.NoError(t, err, "name %q", name)
		require.Len(t, res.Assignments, 1)
		assert.Equal(t, OutcomeError, res.Assignments[0].Outcome, "name %q", name)
		assert.ErrorIs(t, res.Assignments[0].Err, common.ErrInvalidName, "name %q", name)
	}

	for _, transfer := range []string{".", "..", "a/b", `a\b`} {
		_, err := f.linker.AssignNames(context.Background(), transfer, false, []Request{{Digest: d, Names: []string{"ok"}}})
		assert.ErrorIs(t, err, common.ErrInvalidName, "transfer %q", transfer)
	}
}

func TestAssignNames_InvalidNameDoesNotBlockOthers(t *testing.T) {
	f := newFixture(t)
	d := f.put(t, "shared")

	res, err := f.linker.AssignNames(context.Background(), "t", false, []Request{
		{Digest: d, Names: []string{"before", "../escape", "after"}},
	})
	require.NoError(t, err)

	require.Len(t, res.Assignments, 3)
	assert.Equal(t, OutcomeSuccess, res.Assignments[0].Outcome)
	assert.Equal(t, OutcomeError, res.Assignments[1].Outcome)
	assert.ErrorIs(t, res.Assignments[1].Err, common.ErrInvalidName)
	assert.Equal(t, OutcomeSuccess, res.Assignments[2].Outcome)
	assert.Equal(t, "shared", f.read(t, "t", "before"))
	assert.Equal(t, "shared", f.read(t, "t", "after"))

	_, err = os.Stat(filepath.Join(filepath.Dir(f.linker.TransferPath("t")), "escape"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestAssignNames_GeneratesTransferName(t *testing.T) {
	f := newFixture(t)
	f.linker.newID = func() string { return "generated-id" }
	d := f.put(t, "auto")

	res, err := f.linker.AssignNames(context.Background(), "", false, []Request{{Digest: d, Names: []string{"f"}}})
	require.NoError(t, err)
	assert.Equal(t, "generated-id", res.Transfer)
	assert.Equal(t, "auto", f.read(t, "generated-id", "f"))
}

func TestAssignNames_RecordsLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	d := f.put(t, "ledgered")

	_, err := f.linker.AssignNames(ctx, "t", false, []Request{{Digest: d, Names: []string{"b", "a"}}})
	require.NoError(t, err)

	got, err := f.linker.List(ctx, "t")
	require.NoError(t, err)
	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	assert.Equal(t, []ledger.Binding{
		{Transfer: "t", Name: "a", Digest: d, BoundAt: at},
		{Transfer: "t", Name: "b", Digest: d, BoundAt: at},
	}, got)
}

func TestList_UnknownTransfer(t *testing.T) {
	f := newFixture(t)
	_, err := f.linker.List(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestNamesSurviveForcedRestage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	d := f.put(t, "stable")

	_, err := f.linker.AssignNames(ctx, "t", false, []Request{{Digest: d, Names: []string{"keep"}}})
	require.NoError(t, err)

	w, err := f.store.Acquire(d)
	require.NoError(t, err)
	require.NoError(t, w.Reset())
	require.NoError(t, w.Release())

	assert.Equal(t, "stable", f.read(t, "t", "keep"))
}
