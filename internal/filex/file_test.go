package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDirs_CreatesRootAndSubdirs(t *testing.T) {
	root := filepath.Join(t.TempDir(), "store")

	require.NoError(t, EnsureDirs(root, "complete", "partial"))

	for _, dir := range []string{root, filepath.Join(root, "complete"), filepath.Join(root, "partial")} {
		fi, err := os.Stat(dir)
		require.NoError(t, err)
		require.True(t, fi.IsDir(), dir)
	}

	require.NoError(t, EnsureDirs(root, "complete"), "existing directories are fine")
}

func TestEnsureDirs_FailsUnderFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	require.Error(t, EnsureDirs(file, "sub"))
}

func TestSyncDir(t *testing.T) {
	require.NoError(t, SyncDir(t.TempDir()))
	require.Error(t, SyncDir(filepath.Join(t.TempDir(), "missing")))
}
