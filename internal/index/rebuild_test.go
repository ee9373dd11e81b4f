package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/journal/internal/codec"
)

func TestRebuildReindexesFromMarkdown(t *testing.T) {
	ix := openTestIndex(t)
	journalDir := t.TempDir()

	content := append(Encode1(), Encode2()...)
	require.NoError(t, os.WriteFile(filepath.Join(journalDir, "2026-01-17.md"), content, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(journalDir, "INDEX.md"), []byte("not an entry file"), 0o644))

	result, err := ix.Rebuild(journalDir, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.FilesProcessed)
	assert.Equal(t, 2, result.EntriesIndexed)
	assert.Equal(t, 0, result.Errors)

	all, err := ix.Query(QueryParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
}

func TestRebuildIsIdempotent(t *testing.T) {
	ix := openTestIndex(t)
	journalDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(journalDir, "2026-01-17.md"), Encode1(), 0o644))

	_, err := ix.Rebuild(journalDir, nil)
	require.NoError(t, err)
	first, err := ix.Stats()
	require.NoError(t, err)

	_, err = ix.Rebuild(journalDir, nil)
	require.NoError(t, err)
	second, err := ix.Stats()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRebuildEmptyDirectory(t *testing.T) {
	ix := openTestIndex(t)
	result, err := ix.Rebuild(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.FilesProcessed)
}

func TestRebuildMissingDirectoryIsNotAnError(t *testing.T) {
	ix := openTestIndex(t)
	_, err := ix.Rebuild(filepath.Join(t.TempDir(), "does-not-exist"), nil)
	assert.NoError(t, err)
}

// Encode1/Encode2 produce two distinct encoded sections for rebuild fixtures.
func Encode1() []byte {
	return codec.Encode(entryFixture("2026-01-17-001", "a", "bash", "success", 100))
}

func Encode2() []byte {
	return codec.Encode(entryFixture("2026-01-17-002", "b", "grep", "success", 200))
}
