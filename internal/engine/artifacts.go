package engine

import (
	"github.com/mesh-intelligence/journal/internal/artifact"
	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

// ArchiveConfig archives filePath, running the PreArchive/PostArchive hooks
// around the artifact manager's own archive operation.
func (e *Engine) ArchiveConfig(filePath, reason, journalEntry, stage string) (*journal.ConfigArchive, error) {
	if e.Hooks.PreArchive != nil {
		if err := e.Hooks.PreArchive(filePath, reason); err != nil {
			return nil, journalerr.Wrap(journalerr.KindIoFailure, "pre-archive hook rejected", err)
		}
	}
	a, err := e.Artifacts.ArchiveConfig(filePath, reason, journalEntry, stage)
	if err != nil {
		return nil, err
	}
	if e.Hooks.PostArchive != nil {
		if err := e.Hooks.PostArchive(a); err != nil {
			e.Logger.Warn().Err(err).Str("path", filePath).Msg("post-archive hook failed")
		}
	}
	return a, nil
}

// ActivateConfig delegates directly to the artifact manager; activation's
// own required-journal-entry check is enforced there.
func (e *Engine) ActivateConfig(archivePath, targetPath, reason, journalEntry string) (string, error) {
	return e.Artifacts.ActivateConfig(archivePath, targetPath, reason, journalEntry)
}

// PreserveLog moves filePath into the logs tree, running the
// PrePreserve/PostPreserve hooks around the artifact manager's operation.
func (e *Engine) PreserveLog(filePath, category string, outcome journal.LogOutcome) (*journal.LogRecord, error) {
	if e.Hooks.PrePreserve != nil {
		if err := e.Hooks.PrePreserve(filePath, category); err != nil {
			return nil, journalerr.Wrap(journalerr.KindIoFailure, "pre-preserve hook rejected", err)
		}
	}
	r, err := e.Artifacts.PreserveLog(filePath, category, outcome)
	if err != nil {
		return nil, err
	}
	if e.Hooks.PostPreserve != nil {
		if err := e.Hooks.PostPreserve(r); err != nil {
			e.Logger.Warn().Err(err).Str("path", filePath).Msg("post-preserve hook failed")
		}
	}
	return r, nil
}

// StateSnapshotParams is the engine-level request for a state capture.
type StateSnapshotParams struct {
	Name                   string
	IncludeConfigs         bool
	IncludeEnv             bool
	IncludeVersions        bool
	IncludeBuildDirListing bool
	BuildDir               string
}

// StateSnapshot gathers the requested system state into a snapshot
// document, folding in any hook-supplied version probes alongside the
// project's configured shell-command ones.
func (e *Engine) StateSnapshot(p StateSnapshotParams) (*journal.Snapshot, error) {
	var extra map[string]string
	if p.IncludeVersions && len(e.Hooks.CustomVersions) > 0 {
		extra = make(map[string]string, len(e.Hooks.CustomVersions))
		for name, probe := range e.Hooks.CustomVersions {
			extra[name] = probe()
		}
	}
	return e.Artifacts.StateSnapshot(e.Config, e.Root, p.Name, p.IncludeConfigs, p.IncludeEnv, p.IncludeVersions, p.IncludeBuildDirListing, p.BuildDir, extra)
}

// RebuildArtifactIndex regenerates one artifact directory's INDEX.md
// purely from filesystem contents.
func (e *Engine) RebuildArtifactIndex(kind artifact.Kind) error {
	return e.Artifacts.RebuildIndex(kind)
}

// RebuildIndex clears and reparses the secondary index from the daily
// journal files.
func (e *Engine) RebuildIndex(progress func(filePath string, err error)) (result struct {
	FilesProcessed int
	EntriesIndexed int
	Errors         int
}, err error) {
	r, rerr := e.Index.Rebuild(e.journalDir, progress)
	result.FilesProcessed, result.EntriesIndexed, result.Errors = r.FilesProcessed, r.EntriesIndexed, r.Errors
	return result, rerr
}
