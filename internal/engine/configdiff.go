package engine

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/journal/internal/diffutil"
	"github.com/mesh-intelligence/journal/internal/journalerr"
)

const currentPrefix = "current:"

// ConfigDiff renders a unified diff between two config paths. Either side
// may be a literal archive path, or a "current:" prefixed path relative to
// the project root to diff against the live (not-yet-archived) file.
func (e *Engine) ConfigDiff(pathA, pathB string, contextLines int) (string, error) {
	if contextLines <= 0 {
		contextLines = 3
	}

	a, err := e.readConfigSide(pathA)
	if err != nil {
		return "", err
	}
	b, err := e.readConfigSide(pathB)
	if err != nil {
		return "", err
	}

	return diffutil.Unified(a, b, pathA, pathB, contextLines), nil
}

func (e *Engine) readConfigSide(path string) (string, error) {
	resolved := path
	if strings.HasPrefix(path, currentPrefix) {
		resolved = filepath.Join(e.Root, strings.TrimPrefix(path, currentPrefix))
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", journalerr.Wrap(journalerr.KindIoFailure, "read config side "+path, err)
	}
	return string(data), nil
}
