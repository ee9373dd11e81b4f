package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/journal/internal/clock"
	"github.com/mesh-intelligence/journal/internal/index"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

func TestResolveDateTokenToday(t *testing.T) {
	eng := newTestEngine(t)
	fake := clock.NewFake(eng.Clock.Now())
	eng.Clock = fake

	assert.Equal(t, fake.Now().Format("2006-01-02"), eng.resolveDateToken("today"))
	assert.Equal(t, fake.Now().Add(-24*time.Hour).Format("2006-01-02"), eng.resolveDateToken("yesterday"))
	assert.Equal(t, "2026-01-01", eng.resolveDateToken("2026-01-01"))
	assert.Equal(t, "", eng.resolveDateToken(""))
}

func TestQueryFiltersByOutcome(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Append(AppendFields{Author: "a", Context: "ok", Outcome: journal.OutcomeSuccess})
	require.NoError(t, err)
	_, err = eng.Append(AppendFields{Author: "a", Context: "bad", Outcome: journal.OutcomeFailure})
	require.NoError(t, err)

	result, err := eng.Query(index.QueryParams{Filters: map[string]string{"outcome": "failure"}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
}

func TestSearchFiltersByAuthor(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Append(AppendFields{Author: "alice", Context: "alpha work"})
	require.NoError(t, err)
	_, err = eng.Append(AppendFields{Author: "bob", Context: "beta work"})
	require.NoError(t, err)

	result, err := eng.Search(SearchParams{Author: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
}

func TestStatsCountsEntries(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Append(AppendFields{Author: "a", Context: "one"})
	require.NoError(t, err)
	_, err = eng.Append(AppendFields{Author: "a", Context: "two"})
	require.NoError(t, err)

	s, err := eng.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, s.TotalEntries)
}

func TestActiveFiltersByDuration(t *testing.T) {
	eng := newTestEngine(t)
	fast := int64(50)
	slow := int64(5000)
	_, err := eng.Append(AppendFields{Author: "a", Context: "fast", DurationMs: &fast})
	require.NoError(t, err)
	_, err = eng.Append(AppendFields{Author: "a", Context: "slow", DurationMs: &slow})
	require.NoError(t, err)

	active, err := eng.Active(1000, "")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "slow", active[0].Context)
}
