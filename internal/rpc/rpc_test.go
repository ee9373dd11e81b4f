package rpc

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/journal/internal/engine"
	"github.com/mesh-intelligence/journal/internal/jconfig"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	cfg := jconfig.DefaultProject("rpc-test")
	eng, err := engine.New(t.TempDir(), cfg, engine.Hooks{}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { eng.Close() })
	return eng
}

func TestDispatchUnknownOperation(t *testing.T) {
	eng := newTestEngine(t)
	_, err := Dispatch(eng, "does-not-exist", nil)
	require.Error(t, err)
}

func TestDispatchAppendAndRead(t *testing.T) {
	eng := newTestEngine(t)

	appendParams, err := json.Marshal(map[string]any{
		"author":  "a",
		"context": "ran the migration",
		"outcome": string(journal.OutcomeSuccess),
	})
	require.NoError(t, err)

	result, err := Dispatch(eng, "append", appendParams)
	require.NoError(t, err)
	entry, ok := result.(*journal.Entry)
	require.True(t, ok)
	assert.True(t, journal.ValidEntryID(entry.ID))

	readParams, err := json.Marshal(map[string]any{"id": entry.ID})
	require.NoError(t, err)

	read, err := Dispatch(eng, "read", readParams)
	require.NoError(t, err)
	entries, ok := read.([]engine.ReadEntry)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].Entry.ID)
}

func TestDispatchAppendMissingAuthorFails(t *testing.T) {
	eng := newTestEngine(t)
	params, err := json.Marshal(map[string]any{"context": "no author"})
	require.NoError(t, err)

	_, err = Dispatch(eng, "append", params)
	require.Error(t, err)
}

func TestDispatchHelpListsOperations(t *testing.T) {
	eng := newTestEngine(t)
	result, err := Dispatch(eng, "help", nil)
	require.NoError(t, err)
	rows, ok := result.([]engine.ToolDescription)
	require.True(t, ok)
	assert.Len(t, rows, len(Table))
}

func TestDispatchListTemplates(t *testing.T) {
	eng := newTestEngine(t)
	result, err := Dispatch(eng, "list_templates", nil)
	require.NoError(t, err)
	templates, ok := result.([]*journal.Template)
	require.True(t, ok)
	assert.NotEmpty(t, templates)
}

func TestDispatchGetTemplateUnknown(t *testing.T) {
	eng := newTestEngine(t)
	params, err := json.Marshal(map[string]any{"name": "nope"})
	require.NoError(t, err)

	_, err = Dispatch(eng, "get_template", params)
	require.Error(t, err)
}
