package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/raptorboost/internal/digest"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// exerciseRepository runs the behaviour every backend shares.
func exerciseRepository(t *testing.T, r Repository) {
	t.Helper()
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC)

	a := digest.FromBytes([]byte("a"))
	b := digest.FromBytes([]byte("b"))

	require.NoError(t, r.Record(ctx, Binding{Transfer: "alice-2024", Name: "report.pdf", Digest: a, BoundAt: now}))
	require.NoError(t, r.Record(ctx, Binding{Transfer: "alice-2024", Name: "docs/notes.txt", Digest: b, BoundAt: now}))
	require.NoError(t, r.Record(ctx, Binding{Transfer: "alice-2024x", Name: "other", Digest: b, BoundAt: now}))

	// Rebinding replaces.
	later := now.Add(time.Minute)
	require.NoError(t, r.Record(ctx, Binding{Transfer: "alice-2024", Name: "report.pdf", Digest: b, BoundAt: later}))

	got, err := r.List(ctx, "alice-2024")
	require.NoError(t, err)

	want := []Binding{
		{Transfer: "alice-2024", Name: "docs/notes.txt", Digest: b, BoundAt: now},
		{Transfer: "alice-2024", Name: "report.pdf", Digest: b, BoundAt: later},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}

	got, err = r.List(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestMemoryRepository(t *testing.T) {
	r := NewMemoryRepository()
	defer r.Close()
	exerciseRepository(t, r)
}

func TestLevelDBRepository(t *testing.T) {
	r, err := OpenLevelDB(filepath.Join(t.TempDir(), "ledger"))
	require.NoError(t, err)
	defer r.Close()
	exerciseRepository(t, r)
}

func TestSQLiteRepository(t *testing.T) {
	r, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	defer r.Close()
	exerciseRepository(t, r)
}

func TestSQLiteRepository_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	ctx := context.Background()
	d := digest.FromBytes([]byte("persisted"))

	r, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, r.Record(ctx, Binding{Transfer: "t", Name: "n", Digest: d, BoundAt: time.Unix(1700000000, 0).UTC()}))
	require.NoError(t, r.Close())

	r, err = OpenSQLite(ctx, path)
	require.NoError(t, err, "migrations are idempotent")
	defer r.Close()

	got, err := r.List(ctx, "t")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, d, got[0].Digest)
}

func TestLevelDBRepository_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger")
	ctx := context.Background()
	d := digest.FromBytes([]byte("persisted"))

	r, err := OpenLevelDB(path)
	require.NoError(t, err)
	require.NoError(t, r.Record(ctx, Binding{Transfer: "t", Name: "n", Digest: d, BoundAt: time.Unix(1700000000, 0).UTC()}))
	require.NoError(t, r.Close())

	r, err = OpenLevelDB(path)
	require.NoError(t, err)
	defer r.Close()

	got, err := r.List(ctx, "t")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, d, got[0].Digest)
	require.True(t, got[0].BoundAt.Equal(time.Unix(1700000000, 0)))
}
