package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "liability_config_1.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "run_a"), 0o755))

	names, err := NewOSFileSystem().ListNames(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"liability_config_1.json", "notes.txt", "run_a"}, names)
}

func TestListNames_MissingDir(t *testing.T) {
	_, err := NewOSFileSystem().ListNames(filepath.Join(t.TempDir(), "missing"))

	var listErr *ListDirError
	require.ErrorAs(t, err, &listErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	fs := NewOSFileSystem()

	require.NoError(t, fs.WriteFileAtomic(path, []byte(`{"a":1}`), 0o644))
	require.NoError(t, fs.WriteFileAtomic(path, []byte(`{"a":2}`), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.json")

	err := NewOSFileSystem().WriteFileAtomic(path, []byte("{}"), 0o644)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, OpCreateTemp, writeErr.Op)
	assert.Equal(t, path, writeErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFileAtomic_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	path := filepath.Join(t.TempDir(), "config.json")

	require.NoError(t, NewOSFileSystem().WriteFileAtomic(path, []byte("{}"), 0o640))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}
