package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/journal/pkg/journal"
)

func TestAppendRequiresAuthor(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Append(AppendFields{Context: "no author"})
	require.Error(t, err)
}

func TestAppendAssignsSequentialIDs(t *testing.T) {
	eng := newTestEngine(t)

	first, err := eng.Append(AppendFields{Author: "a", Context: "first", Outcome: journal.OutcomeSuccess})
	require.NoError(t, err)
	second, err := eng.Append(AppendFields{Author: "a", Context: "second", Outcome: journal.OutcomeSuccess})
	require.NoError(t, err)

	assert.True(t, journal.ValidEntryID(first.ID))
	assert.True(t, journal.ValidEntryID(second.ID))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAppendIndexesTheEntry(t *testing.T) {
	eng := newTestEngine(t)

	entry, err := eng.Append(AppendFields{Author: "a", Context: "indexed", Outcome: journal.OutcomeSuccess})
	require.NoError(t, err)

	got, path, err := eng.Index.Get(entry.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.Author, got.Author)
	assert.Contains(t, path, "journal")
}

func TestAppendRequiresTemplateWhenConfigured(t *testing.T) {
	eng := newTestEngine(t)
	eng.Config.Validation.RequireTemplates = true

	_, err := eng.Append(AppendFields{Author: "a", Context: "no template"})
	require.Error(t, err)
}

func TestAppendUnknownTemplateRejected(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Append(AppendFields{Author: "a", Template: "does-not-exist"})
	require.Error(t, err)
}

func TestAppendValidatesReferences(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Append(AppendFields{Author: "a", Context: "dangling ref", References: []string{"2026-01-01-999"}})
	require.Error(t, err)
}

func TestAppendAllowsValidReference(t *testing.T) {
	eng := newTestEngine(t)
	first, err := eng.Append(AppendFields{Author: "a", Context: "first", Outcome: journal.OutcomeSuccess})
	require.NoError(t, err)

	second, err := eng.Append(AppendFields{Author: "a", Context: "second", References: []string{first.ID}})
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID}, second.References)
}

func TestAmendRequiresExistingTarget(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Amend(AmendFields{Author: "a", ReferencesEntry: "2026-01-01-001", Correction: "c", Actual: "a", Impact: "i"})
	require.Error(t, err)
}

func TestAmendSucceedsAgainstExistingEntry(t *testing.T) {
	eng := newTestEngine(t)
	original, err := eng.Append(AppendFields{Author: "a", Context: "original"})
	require.NoError(t, err)

	amendment, err := eng.Amend(AmendFields{
		Author: "a", ReferencesEntry: original.ID,
		Correction: "wrong tool name", Actual: "used bash not zsh", Impact: "none",
	})
	require.NoError(t, err)
	assert.Equal(t, journal.KindAmendment, amendment.Kind)
	assert.Equal(t, original.ID, amendment.ReferencesEntry)
}

func TestAmendRequiresAllThreeFields(t *testing.T) {
	eng := newTestEngine(t)
	original, err := eng.Append(AppendFields{Author: "a", Context: "original"})
	require.NoError(t, err)

	_, err = eng.Amend(AmendFields{Author: "a", ReferencesEntry: original.ID, Correction: "c"})
	require.Error(t, err)
}
