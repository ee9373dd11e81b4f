package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/journal/internal/journalerr"
)

func TestReadRequiresExactlyOneMode(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Read(ReadParams{})
	require.Error(t, err)

	_, err = eng.Read(ReadParams{ID: "2026-01-01-001", Date: "2026-01-01"})
	require.Error(t, err)
}

func TestReadByID(t *testing.T) {
	eng := newTestEngine(t)
	entry, err := eng.Append(AppendFields{Author: "a", Context: "hello"})
	require.NoError(t, err)

	results, err := eng.Read(ReadParams{ID: entry.ID})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entry.ID, results[0].Entry.ID)
	assert.Empty(t, results[0].Raw)
}

func TestReadByIDIncludeContent(t *testing.T) {
	eng := newTestEngine(t)
	entry, err := eng.Append(AppendFields{Author: "a", Context: "hello"})
	require.NoError(t, err)

	results, err := eng.Read(ReadParams{ID: entry.ID, IncludeContent: true})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].Raw)
}

func TestReadByIDNotFound(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Read(ReadParams{ID: "2026-01-01-001"})
	require.Error(t, err)
}

func TestReadByDateReturnsAllEntriesThatDay(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Append(AppendFields{Author: "a", Context: "one"})
	require.NoError(t, err)
	_, err = eng.Append(AppendFields{Author: "a", Context: "two"})
	require.NoError(t, err)

	today := eng.Clock.Now().Format("2006-01-02")
	results, err := eng.Read(ReadParams{Date: today})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestReadByDateMissingFileIsNotFound(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Read(ReadParams{Date: "2020-01-01"})
	require.Error(t, err)
	assert.Equal(t, journalerr.KindNotFound, journalerr.KindOf(err))
}

func TestReadByRangeTreatsMissingDaysAsGaps(t *testing.T) {
	eng := newTestEngine(t)
	results, err := eng.Read(ReadParams{DateFrom: "2020-01-01", DateTo: "2020-01-03"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestReadByRangeRejectsInvertedRange(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Read(ReadParams{DateFrom: "2026-02-01", DateTo: "2026-01-01"})
	require.Error(t, err)
}
