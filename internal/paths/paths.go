// Package paths resolves the project root the journal engine is
// constructed against. Unlike the teacher's XDG config/data-directory
// split, a journal project is rooted at a single directory holding
// journal_config.toml (or .journal.toml) plus its journal/configs/logs/
// snapshots subdirectories, so there is one root to resolve, not two.
package paths

import (
	"os"
	"path/filepath"
)

// EnvRoot is the environment variable override for the project root,
// checked when --root is not given.
const EnvRoot = "JOURNAL_ROOT"

// ResolveRoot returns the project root following the precedence chain:
// flag > JOURNAL_ROOT env > current working directory.
func ResolveRoot(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvRoot); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return cwd, nil
}
