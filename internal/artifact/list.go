package artifact

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/mesh-intelligence/journal/pkg/journal"
)

// archiveFilenamePattern recovers the timestamp and reason slug this
// package's own filename contract embeds: {ts}_{slug}{ext}.
var archiveFilenamePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2})_(.+?)(\.[^.]+)?$`)

func parseArtifactFilename(name string) (ts time.Time, slug string, ok bool) {
	base := name
	match := archiveFilenamePattern.FindStringSubmatch(base)
	if match == nil {
		return time.Time{}, "", false
	}
	t, err := time.Parse("2006-01-02T15-04-05", match[1])
	if err != nil {
		return time.Time{}, "", false
	}
	return t, match[2], true
}

// ListConfigArchives reconstructs ConfigArchive records directly from the
// configs directory layout, for Timeline's event feed. Reason is rebuilt
// from the filename's slug with dashes turned into spaces, so the original
// punctuation and case are lost; journal-entry linkage is not recoverable
// from the filename and is left blank. configs/INDEX.md keeps both verbatim.
func (m *Manager) ListConfigArchives() ([]*journal.ConfigArchive, error) {
	basenames, err := os.ReadDir(m.ConfigsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var result []*journal.ConfigArchive
	for _, bn := range basenames {
		if !bn.IsDir() {
			continue
		}
		dir := filepath.Join(m.ConfigsDir, bn.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, f := range files {
			ts, slug, ok := parseArtifactFilename(f.Name())
			if !ok {
				continue
			}
			result = append(result, &journal.ConfigArchive{
				OriginalPath: bn.Name(),
				ArchivePath:  filepath.Join(dir, f.Name()),
				Timestamp:    ts,
				Reason:       strings.ReplaceAll(slug, "-", " "),
			})
		}
	}
	return result, nil
}

// ListLogRecords reconstructs LogRecord entries from the logs directory.
func (m *Manager) ListLogRecords() ([]*journal.LogRecord, error) {
	categories, err := os.ReadDir(m.LogsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var result []*journal.LogRecord
	for _, cat := range categories {
		if !cat.IsDir() {
			continue
		}
		dir := filepath.Join(m.LogsDir, cat.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, f := range files {
			ts, slug, ok := parseArtifactFilename(f.Name())
			if !ok {
				continue
			}
			info, _ := f.Info()
			var size int64
			if info != nil {
				size = info.Size()
			}
			result = append(result, &journal.LogRecord{
				PreservedPath: filepath.Join(dir, f.Name()),
				Timestamp:     ts,
				Category:      cat.Name(),
				Outcome:       journal.LogOutcome(slug),
				SizeBytes:     size,
			})
		}
	}
	return result, nil
}

// ListSnapshots reconstructs Snapshot headers (name + timestamp only,
// bodies are not re-read) from the snapshots directory.
func (m *Manager) ListSnapshots() ([]*journal.Snapshot, error) {
	files, err := os.ReadDir(m.SnapshotsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var result []*journal.Snapshot
	for _, f := range files {
		if f.IsDir() || f.Name() == "INDEX.md" {
			continue
		}
		ts, slug, ok := parseArtifactFilename(f.Name())
		if !ok {
			continue
		}
		result = append(result, &journal.Snapshot{
			Name:      strings.ReplaceAll(slug, "-", " "),
			Timestamp: ts,
		})
	}
	return result, nil
}
