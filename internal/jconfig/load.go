package jconfig

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mesh-intelligence/journal/internal/journalerr"
)

// candidateFiles is the search order find and Load use to locate a
// project's config file when no explicit path is given.
var candidateFiles = []string{"journal_config.toml", ".journal.toml", "journal_config.json", ".journal.json"}

// Find searches dir (and does not walk upward further, unlike the Python
// original's project-root search — the engine is always constructed with
// an explicit project root) for one of the recognized config file names.
func Find(dir string) (string, bool) {
	for _, name := range candidateFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Load reads a Project record from path, dispatching on its extension.
// An absent or unreadable file is an IoFailure error; LoadFromDir is the
// entry point that falls back to defaults when no config file exists.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "read config file", err)
	}

	p := DefaultProject("")
	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.Decode(string(data), p); err != nil {
			return nil, journalerr.Wrap(journalerr.KindInvalidArgument, "parse toml config", err)
		}
	case ".json":
		if err := json.Unmarshal(data, p); err != nil {
			return nil, journalerr.Wrap(journalerr.KindInvalidArgument, "parse json config", err)
		}
	default:
		return nil, journalerr.New(journalerr.KindInvalidArgument, "unrecognized config extension: "+path)
	}

	if p.Name == "" {
		return nil, journalerr.New(journalerr.KindInvalidArgument, "config: name must not be empty")
	}
	return p, nil
}

// LoadFromDir finds and loads a project config from dir, or returns a
// DefaultProject named after dir's base name when none exists.
func LoadFromDir(dir string) (*Project, error) {
	path, ok := Find(dir)
	if !ok {
		return DefaultProject(filepath.Base(dir)), nil
	}
	return Load(path)
}
