package lockfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicReplaceCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "file.md")

	require.NoError(t, AtomicReplace(path, []byte("hello")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestAtomicReplaceOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.md")

	require.NoError(t, AtomicReplace(path, []byte("first")))
	require.NoError(t, AtomicReplace(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestReadOrEmptyMissingFile(t *testing.T) {
	dir := t.TempDir()
	data, err := ReadOrEmpty(filepath.Join(dir, "absent.md"))
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestScopedLockRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2026-01-17.md")

	unlock, err := ScopedLock(path, 0)
	require.NoError(t, err)
	unlock()

	unlock2, err := ScopedLock(path, 0)
	require.NoError(t, err)
	unlock2()
}
