package engine

import (
	"sort"

	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

// ListTemplates returns the merged built-in + project-declared templates,
// sorted by name.
func (e *Engine) ListTemplates() []*journal.Template {
	names := make([]string, 0, len(e.Templates))
	for name := range e.Templates {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*journal.Template, 0, len(names))
	for _, name := range names {
		out = append(out, e.Templates[name])
	}
	return out
}

// GetTemplate returns the named template, or TemplateNotFound.
func (e *Engine) GetTemplate(name string) (*journal.Template, error) {
	t, ok := e.Templates[name]
	if !ok {
		return nil, journalerr.New(journalerr.KindTemplateNotFound, "unknown template "+name)
	}
	return t, nil
}

// ToolDescription is one row of Help's static capability listing.
type ToolDescription struct {
	Name        string
	Description string
}

// Help returns the fixed capability listing the outer RPC/CLI surface
// shows callers: one row per tool operation this engine exposes.
func Help() []ToolDescription {
	return []ToolDescription{
		{"append", "record a new narrative journal entry"},
		{"amend", "record a correction to a prior entry"},
		{"read", "read entries by id, date, or date range"},
		{"query", "filtered, paginated, full-text retrieval"},
		{"search", "legacy full-text search over entries"},
		{"stats", "overall entry counts and date coverage"},
		{"active", "entries whose duration meets a threshold"},
		{"archive_config", "content-addressed archive of a config file"},
		{"activate_config", "promote an archived config to its live path"},
		{"diff_config", "unified diff between two config archive paths"},
		{"preserve_log", "move a log file into the preserved-logs tree"},
		{"state_snapshot", "capture configs/env/versions/build listing"},
		{"timeline", "interleaved feed of entries and artifact events"},
		{"trace_causality", "BFS walk of an entry's caused_by graph"},
		{"session_handoff", "summary document over a date window"},
		{"rebuild_artifact_index", "regenerate one artifact INDEX.md"},
		{"rebuild_index", "reparse all daily files into the index"},
		{"list_templates", "list the built-in and project templates"},
		{"get_template", "look up one named template"},
		{"help", "this capability listing"},
	}
}
