package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/journal/pkg/journal"
)

func TestPreserveLogMovesFile(t *testing.T) {
	m, root := newTestManager(t)
	logPath := filepath.Join(root, "build.log")
	require.NoError(t, os.WriteFile(logPath, []byte("build output"), 0o644))

	record, err := m.PreserveLog(logPath, "build", journal.LogOutcomeSuccess)
	require.NoError(t, err)

	assert.NoFileExists(t, logPath)
	assert.FileExists(t, record.PreservedPath)
	assert.Equal(t, int64(len("build output")), record.SizeBytes)
}

func TestPreserveLogRejectsUnknownOutcome(t *testing.T) {
	m, root := newTestManager(t)
	logPath := filepath.Join(root, "build.log")
	require.NoError(t, os.WriteFile(logPath, []byte("x"), 0o644))

	_, err := m.PreserveLog(logPath, "build", journal.LogOutcome("maybe"))
	assert.Error(t, err)
}
