package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	for _, name := range []string{"a.hcl", "nested/b.hcl", "c.txt", ".hidden/d.hcl"} {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o600))
	}

	// --- Act ---
	files, err := FindFilesByExtension(root, ".hcl")

	// --- Assert ---
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "nested", "b.hcl"),
	}, files)
}

func TestFindFilesByExtension_PanicsOnEmptyExtension(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir(), "") })
}

func TestReplaceFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.txt")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o640))

	// --- Act ---
	err := ReplaceFile(path, []byte("new\n"))

	// --- Assert ---
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestReplaceFile_CreatesMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fresh.txt")

	require.NoError(t, ReplaceFile(path, []byte("1.0\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0\n", string(data))
}

func TestReplaceFile_RejectsDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := ReplaceFile(dir, []byte("x"))

	assert.Error(t, err)
}

func TestReplaceFile_MissingDirectory(t *testing.T) {
	t.Parallel()

	err := ReplaceFile(filepath.Join(t.TempDir(), "nope", "out.txt"), []byte("x"))

	assert.Error(t, err)
}
