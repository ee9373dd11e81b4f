package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestArchiveConfigAndActivate(t *testing.T) {
	eng := newTestEngine(t)
	entry, err := eng.Append(AppendFields{Author: "a", Context: "config change"})
	require.NoError(t, err)

	cfgPath := writeTempFile(t, t.TempDir(), "app.toml", "setting = 1\n")
	archive, err := eng.ArchiveConfig(cfgPath, "bump setting", entry.ID, "")
	require.NoError(t, err)
	assert.NotEmpty(t, archive.ContentHash)

	target := filepath.Join(t.TempDir(), "app.toml")
	_, err = eng.ActivateConfig(archive.ArchivePath, target, "promote to live", entry.ID)
	require.NoError(t, err)

	activated, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "setting = 1\n", string(activated))
}

func TestArchiveConfigRequiresReason(t *testing.T) {
	eng := newTestEngine(t)
	cfgPath := writeTempFile(t, t.TempDir(), "app.toml", "x = 1\n")
	_, err := eng.ArchiveConfig(cfgPath, "", "", "")
	require.Error(t, err)
}

func TestConfigDiffAgainstCurrentFile(t *testing.T) {
	eng := newTestEngine(t)
	liveDir := eng.Root
	writeTempFile(t, liveDir, "app.toml", "setting = 2\n")

	archiveSource := writeTempFile(t, t.TempDir(), "app.toml", "setting = 1\n")
	entry, err := eng.Append(AppendFields{Author: "a", Context: "archive before change"})
	require.NoError(t, err)
	archive, err := eng.ArchiveConfig(archiveSource, "before bump", entry.ID, "")
	require.NoError(t, err)

	diff, err := eng.ConfigDiff(archive.ArchivePath, "current:app.toml", 3)
	require.NoError(t, err)
	assert.Contains(t, diff, "setting = 1")
	assert.Contains(t, diff, "setting = 2")
}
