// Package artifact implements the archive/preserve/snapshot operations
// that keep content-addressed copies of configs, logs, and state outside
// the append-only journal stream, each directory carrying its own
// rebuildable human-readable INDEX.md.
package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"time"

	"github.com/mesh-intelligence/journal/internal/clock"
)

// Manager roots all artifact operations under the project's configs/,
// logs/, and snapshots/ subtrees.
type Manager struct {
	ConfigsDir    string
	LogsDir       string
	SnapshotsDir  string
	Clock         clock.Clock
}

// New builds a Manager rooted at the three given directories.
func New(configsDir, logsDir, snapshotsDir string, c clock.Clock) *Manager {
	return &Manager{ConfigsDir: configsDir, LogsDir: logsDir, SnapshotsDir: snapshotsDir, Clock: c}
}

// filenameTimestamp formats now per §6's on-disk filename contract:
// ISO 8601 with colons replaced by dashes for filesystem safety.
func filenameTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15-04-05")
}

var slugDisallowed = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns free text into the {reason-slug} / {name-slug} component of
// an artifact filename: lowercased, non-alphanumeric runs collapsed to a
// single dash, leading/trailing dashes trimmed.
func slugify(s string) string {
	s = strings.ToLower(s)
	s = slugDisallowed.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
