// Package engine composes the clock, lockfile, codec, index, and artifact
// packages into the single façade every caller (CLI, RPC dispatch table)
// drives. One Engine owns exactly one project root and one index
// connection, mirroring the "encapsulate everything, no package globals"
// shape the rest of this codebase follows.
package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/journal/internal/artifact"
	"github.com/mesh-intelligence/journal/internal/clock"
	"github.com/mesh-intelligence/journal/internal/index"
	"github.com/mesh-intelligence/journal/internal/jconfig"
	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

// Hooks are the caller-supplied extension points the append/archive/
// preserve flows invoke. Each is optional; a nil hook is skipped.
type Hooks struct {
	// PreAppend may mutate e in place or return an error to reject the
	// append entirely; a rejection leaves no trace on disk or in the index.
	PreAppend func(e *journal.Entry) error
	// PostAppend observes the persisted entry; its error is logged, not
	// propagated — the entry is already durable by the time it runs.
	PostAppend func(e *journal.Entry) error

	PreArchive  func(filePath, reason string) error
	PostArchive func(a *journal.ConfigArchive) error

	PrePreserve  func(filePath, category string) error
	PostPreserve func(r *journal.LogRecord) error

	// CustomVersions supplies version probes beyond the project's
	// configured VersionCommands, keyed by tool name.
	CustomVersions map[string]func() string
}

// Engine is the journal engine façade: one instance per project root.
type Engine struct {
	Root   string
	Config *jconfig.Project

	Index     *index.Index
	Artifacts *artifact.Manager
	Clock     clock.Clock
	Hooks     Hooks
	Templates map[string]*journal.Template

	Logger zerolog.Logger

	journalDir string
}

// New constructs an Engine rooted at root, creating the project's four
// subdirectories, opening (and migrating) the index database and merging
// the project's declared templates over the built-in defaults.
func New(root string, cfg *jconfig.Project, hooks Hooks, logger zerolog.Logger) (*Engine, error) {
	if cfg.Name == "" {
		return nil, journalerr.New(journalerr.KindInvalidArgument, "project config requires a name")
	}

	journalDir := filepath.Join(root, orDefault(cfg.JournalDir, "journal"))
	configsDir := filepath.Join(root, orDefault(cfg.ConfigsDir, "configs"))
	logsDir := filepath.Join(root, orDefault(cfg.LogsDir, "logs"))
	snapshotsDir := filepath.Join(root, orDefault(cfg.SnapshotsDir, "snapshots"))

	if err := Init(root, cfg); err != nil {
		return nil, err
	}

	idx, err := index.Open(filepath.Join(journalDir, ".index.db"))
	if err != nil {
		return nil, err
	}

	c := clock.Clock(clock.System{})

	eng := &Engine{
		Root:       root,
		Config:     cfg,
		Index:      idx,
		Artifacts:  artifact.New(configsDir, logsDir, snapshotsDir, c),
		Clock:      c,
		Hooks:      hooks,
		Templates:  mergeTemplates(cfg.Templates),
		Logger:     logger,
		journalDir: journalDir,
	}
	return eng, nil
}

// Close releases the index connection.
func (e *Engine) Close() error {
	return e.Index.Close()
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// mergeTemplates overlays project-declared templates onto the built-in
// set, by name.
func mergeTemplates(declared []jconfig.TemplateConfig) map[string]*journal.Template {
	merged := journal.DefaultTemplates()
	for _, tc := range declared {
		merged[tc.Name] = &journal.Template{
			Name:           tc.Name,
			Description:    tc.Description,
			RequiredFields: tc.RequiredFields,
			OptionalFields: tc.OptionalFields,
			DefaultOutcome: journal.Outcome(tc.DefaultOutcome),
		}
	}
	return merged
}

// Init creates the four on-disk subdirectories a project needs, without
// opening an index connection — the shape the CLI's init command drives.
func Init(root string, cfg *jconfig.Project) error {
	dirs := []string{
		orDefault(cfg.JournalDir, "journal"),
		orDefault(cfg.ConfigsDir, "configs"),
		orDefault(cfg.LogsDir, "logs"),
		orDefault(cfg.SnapshotsDir, "snapshots"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			return journalerr.Wrap(journalerr.KindIoFailure, fmt.Sprintf("create %s", d), err)
		}
	}
	return nil
}

func (e *Engine) dailyFilePath(date string) string {
	return filepath.Join(e.journalDir, date+".md")
}
