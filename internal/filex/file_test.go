package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_RelativeIsResolvedAgainstCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir(".recipebox")
	require.NoError(t, err)

	// macOS temp dirs may be symlinked; compare resolved paths.
	want, err := filepath.EvalSymlinks(filepath.Join(tmp, ".recipebox"))
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	require.Equal(t, want, gotResolved)
}

func TestEnsureDir_AbsoluteNestedAndIdempotent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b")

	got, err := EnsureDir(target)
	require.NoError(t, err)
	require.Equal(t, target, got)

	fi, err := os.Stat(target)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	_, err = EnsureDir(target)
	require.NoError(t, err)
}

func TestEnsureDir_FailsWhenPathIsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o600))

	_, err := EnsureDir(filepath.Join(f, "sub"))
	require.Error(t, err)
}
