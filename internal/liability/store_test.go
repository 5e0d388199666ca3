package liability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Cyclone1070/palm/internal/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFileName), `{"sFileName": "root"}`)
	writeFile(t, filepath.Join(root, "run_a", ConfigFileName), `{"sFileName": "a", "iTimeStep": 12}`)
	writeFile(t, filepath.Join(root, "run_b", ConfigFileName), `{"sFileName": "b",}`)
	writeFile(t, filepath.Join(root, "run_b", "nested", ConfigFileName), `{"sFileName": "nested"}`)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))

	entries, err := Discover(fsutil.NewOSFileSystem(), root)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "run_a", entries[0].Name)
	assert.Equal(t, filepath.Join(root, "run_a"), entries[0].Dir)
	assert.Equal(t, 12, entries[0].Summary.TimeStep)
	assert.Equal(t, "b", entries[1].Summary.FileName)
	assert.Equal(t, "nested", entries[2].Name)
}

func TestDiscover_StopsOnBadConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a_bad", ConfigFileName), `{not valid`)
	writeFile(t, filepath.Join(root, "b_good", ConfigFileName), `{"sFileName": "b"}`)

	_, err := Discover(fsutil.NewOSFileSystem(), root)

	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Contains(t, derr.Path, "a_bad")
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := Discover(fsutil.NewOSFileSystem(), filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteNext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "liability_config.json"), `{}`)
	writeFile(t, filepath.Join(dir, "liability_config_4.json"), `{}`)

	name, err := WriteNext(fsutil.NewOSFileSystem(), dir, Document{"sFileName": "run_a"})
	require.NoError(t, err)
	assert.Equal(t, "liability_config_5.json", name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"sFileName\": \"run_a\"\n}", string(data))

	name, err = WriteNext(fsutil.NewOSFileSystem(), dir, Document{})
	require.NoError(t, err)
	assert.Equal(t, "liability_config_6.json", name)
}

func TestWriteNext_MissingDir(t *testing.T) {
	_, err := WriteNext(fsutil.NewOSFileSystem(), filepath.Join(t.TempDir(), "nope"), Document{})

	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
