package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/journal/pkg/journal"
)

func TestActiveOrdersByDurationDescending(t *testing.T) {
	ix := openTestIndex(t)
	require.NoError(t, ix.IndexEntry(entryFixture("2026-01-17-001", "a", "bash", journal.OutcomeSuccess, 500), "journal/2026-01-17.md"))
	require.NoError(t, ix.IndexEntry(entryFixture("2026-01-17-002", "a", "bash", journal.OutcomeSuccess, 9000), "journal/2026-01-17.md"))
	require.NoError(t, ix.IndexEntry(entryFixture("2026-01-17-003", "a", "bash", journal.OutcomeSuccess, 50), "journal/2026-01-17.md"))

	got, err := ix.Active(100, "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-01-17-002", got[0].ID)
	assert.Equal(t, "2026-01-17-001", got[1].ID)
}

func TestActiveNegativeThresholdFails(t *testing.T) {
	ix := openTestIndex(t)
	_, err := ix.Active(-1, "")
	assert.Error(t, err)
}

func TestActiveFilteredByTool(t *testing.T) {
	ix := openTestIndex(t)
	require.NoError(t, ix.IndexEntry(entryFixture("2026-01-17-001", "a", "bash", journal.OutcomeSuccess, 500), "journal/2026-01-17.md"))
	require.NoError(t, ix.IndexEntry(entryFixture("2026-01-17-002", "a", "grep", journal.OutcomeSuccess, 9000), "journal/2026-01-17.md"))

	got, err := ix.Active(0, "grep")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "grep", got[0].Tool)
}
