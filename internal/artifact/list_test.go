package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/journal/internal/jconfig"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

func TestListConfigArchivesReadsBackWhatWasArchived(t *testing.T) {
	m, root := newTestManager(t)
	cfgPath := filepath.Join(root, "build.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("X=1"), 0o644))
	_, err := m.ArchiveConfig(cfgPath, "initial capture", "", "")
	require.NoError(t, err)

	archives, err := m.ListConfigArchives()
	require.NoError(t, err)
	require.Len(t, archives, 1)
	assert.Equal(t, "build.toml", archives[0].OriginalPath)
	assert.Contains(t, archives[0].Reason, "initial")
}

func TestListLogRecordsReadsBackWhatWasPreserved(t *testing.T) {
	m, root := newTestManager(t)
	logPath := filepath.Join(root, "build.log")
	require.NoError(t, os.WriteFile(logPath, []byte("ok"), 0o644))
	_, err := m.PreserveLog(logPath, "build", journal.LogOutcomeSuccess)
	require.NoError(t, err)

	records, err := m.ListLogRecords()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "build", records[0].Category)
	assert.Equal(t, journal.LogOutcomeSuccess, records[0].Outcome)
}

func TestListSnapshotsReadsBackWhatWasCaptured(t *testing.T) {
	m, root := newTestManager(t)
	project := jconfig.DefaultProject("demo")
	_, err := m.StateSnapshot(project, root, "pre release check", false, false, false, false, "", nil)
	require.NoError(t, err)

	snaps, err := m.ListSnapshots()
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Contains(t, snaps[0].Name, "release")
}

func TestListersTolerateMissingDirectories(t *testing.T) {
	m, _ := newTestManager(t)
	m.ConfigsDir = filepath.Join(m.ConfigsDir, "does-not-exist")
	m.LogsDir = filepath.Join(m.LogsDir, "does-not-exist")
	m.SnapshotsDir = filepath.Join(m.SnapshotsDir, "does-not-exist")

	configs, err := m.ListConfigArchives()
	assert.NoError(t, err)
	assert.Nil(t, configs)

	logs, err := m.ListLogRecords()
	assert.NoError(t, err)
	assert.Nil(t, logs)

	snaps, err := m.ListSnapshots()
	assert.NoError(t, err)
	assert.Nil(t, snaps)
}
