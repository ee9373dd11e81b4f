package rpc

import (
	"encoding/json"

	"github.com/mesh-intelligence/journal/internal/engine"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

type archiveConfigRequest struct {
	FilePath     string `json:"file_path"`
	Reason       string `json:"reason"`
	JournalEntry string `json:"journal_entry"`
	Stage        string `json:"stage"`
}

func handleArchiveConfig(e *engine.Engine, params json.RawMessage) (any, error) {
	var req archiveConfigRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	return e.ArchiveConfig(req.FilePath, req.Reason, req.JournalEntry, req.Stage)
}

type activateConfigRequest struct {
	ArchivePath  string `json:"archive_path"`
	TargetPath   string `json:"target_path"`
	Reason       string `json:"reason"`
	JournalEntry string `json:"journal_entry"`
}

type activateConfigResponse struct {
	SupersededPath string `json:"superseded_path"`
}

func handleActivateConfig(e *engine.Engine, params json.RawMessage) (any, error) {
	var req activateConfigRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	superseded, err := e.ActivateConfig(req.ArchivePath, req.TargetPath, req.Reason, req.JournalEntry)
	if err != nil {
		return nil, err
	}
	return activateConfigResponse{SupersededPath: superseded}, nil
}

type diffConfigRequest struct {
	PathA        string `json:"path_a"`
	PathB        string `json:"path_b"`
	ContextLines int    `json:"context_lines"`
}

type diffConfigResponse struct {
	Diff string `json:"diff"`
}

func handleDiffConfig(e *engine.Engine, params json.RawMessage) (any, error) {
	var req diffConfigRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	diff, err := e.ConfigDiff(req.PathA, req.PathB, req.ContextLines)
	if err != nil {
		return nil, err
	}
	return diffConfigResponse{Diff: diff}, nil
}

type preserveLogRequest struct {
	FilePath string             `json:"file_path"`
	Category string             `json:"category"`
	Outcome  journal.LogOutcome `json:"outcome"`
}

func handlePreserveLog(e *engine.Engine, params json.RawMessage) (any, error) {
	var req preserveLogRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	return e.PreserveLog(req.FilePath, req.Category, req.Outcome)
}

type stateSnapshotRequest struct {
	Name                   string `json:"name"`
	IncludeConfigs         bool   `json:"include_configs"`
	IncludeEnv             bool   `json:"include_env"`
	IncludeVersions        bool   `json:"include_versions"`
	IncludeBuildDirListing bool   `json:"include_build_dir_listing"`
	BuildDir               string `json:"build_dir"`
}

func handleStateSnapshot(e *engine.Engine, params json.RawMessage) (any, error) {
	var req stateSnapshotRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	return e.StateSnapshot(engine.StateSnapshotParams{
		Name: req.Name, IncludeConfigs: req.IncludeConfigs, IncludeEnv: req.IncludeEnv,
		IncludeVersions: req.IncludeVersions, IncludeBuildDirListing: req.IncludeBuildDirListing,
		BuildDir: req.BuildDir,
	})
}
