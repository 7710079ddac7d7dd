package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact.txt")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(got))

	// overwriting replaces the file as a whole
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0o644))

	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "artifact.txt", entries[0].Name())
}

func TestMarkExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("echo hi\n"), 0o600))

	require.NoError(t, MarkExecutable(path, 0o111))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o111), fi.Mode().Perm()&0o111)
	// the existing bits survive
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm()&0o600)
}

func TestMarkExecutableMissingFile(t *testing.T) {
	err := MarkExecutable(filepath.Join(t.TempDir(), "nope"), 0o111)
	assert.Error(t, err)
}
