package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuildConfigsIndexFromFilesystem(t *testing.T) {
	m, root := newTestManager(t)
	cfgPath := filepath.Join(root, "build.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("X=1"), 0o644))
	_, err := m.ArchiveConfig(cfgPath, "first", "", "")
	require.NoError(t, err)

	// Corrupt INDEX.md to prove rebuild ignores prior contents.
	require.NoError(t, os.WriteFile(filepath.Join(m.ConfigsDir, "INDEX.md"), []byte("garbage"), 0o644))

	require.NoError(t, m.RebuildIndex(KindConfigs))

	data, err := os.ReadFile(filepath.Join(m.ConfigsDir, "INDEX.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "build.toml")
	assert.NotContains(t, string(data), "garbage")
}

func TestRebuildIndexUnknownKindFails(t *testing.T) {
	m, _ := newTestManager(t)
	err := m.RebuildIndex(Kind("bogus"))
	assert.Error(t, err)
}

func TestRebuildIndexMissingDirectoryIsNotAnError(t *testing.T) {
	m, _ := newTestManager(t)
	assert.NoError(t, m.RebuildIndex(KindConfigs))
	assert.NoError(t, m.RebuildIndex(KindLogs))
	assert.NoError(t, m.RebuildIndex(KindSnapshots))
}
