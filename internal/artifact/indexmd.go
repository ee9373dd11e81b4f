package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/internal/lockfile"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

// Kind selects which of the three artifact trees rebuild_artifact_index
// operates on.
type Kind string

const (
	KindConfigs   Kind = "configs"
	KindLogs      Kind = "logs"
	KindSnapshots Kind = "snapshots"
)

func (m *Manager) appendConfigIndex(a *journal.ConfigArchive) error {
	row := []string{
		filepath.Base(a.OriginalPath),
		a.ArchivePath,
		a.Timestamp.UTC().Format(indexTimestampFormat),
		a.Reason,
		a.JournalEntry,
		a.Stage,
	}
	return appendIndexRow(filepath.Join(m.ConfigsDir, "INDEX.md"), configIndexHeader, row)
}

func (m *Manager) appendLogIndex(r *journal.LogRecord) error {
	row := []string{
		r.Category,
		r.PreservedPath,
		r.Timestamp.UTC().Format(indexTimestampFormat),
		string(r.Outcome),
		fmt.Sprintf("%d", r.SizeBytes),
	}
	return appendIndexRow(filepath.Join(m.LogsDir, "INDEX.md"), logIndexHeader, row)
}

func (m *Manager) appendSnapshotIndex(path string, s *journal.Snapshot) error {
	row := []string{
		filepath.Base(path),
		s.Timestamp.UTC().Format(indexTimestampFormat),
		s.Name,
	}
	return appendIndexRow(filepath.Join(m.SnapshotsDir, "INDEX.md"), snapshotIndexHeader, row)
}

const indexTimestampFormat = "2006-01-02T15:04:05Z07:00"

var (
	configIndexHeader   = []string{"Basename", "Archive Path", "Timestamp", "Reason", "Entry", "Stage"}
	logIndexHeader      = []string{"Category", "Preserved Path", "Timestamp", "Outcome", "Size (bytes)"}
	snapshotIndexHeader = []string{"File", "Timestamp", "Name"}
)

// appendIndexRow appends one markdown-table row to path, creating the
// file with its header if it does not yet exist. The whole file is
// rewritten via AtomicReplace under its own sibling lock.
func appendIndexRow(path string, header []string, row []string) error {
	unlock, err := lockfile.ScopedLock(path, 0)
	if err != nil {
		return err
	}
	defer unlock()

	existing, err := lockfile.ReadOrEmpty(path)
	if err != nil {
		return err
	}

	var b strings.Builder
	if len(existing) == 0 {
		writeTableHeader(&b, header)
	} else {
		b.Write(existing)
		if !strings.HasSuffix(string(existing), "\n") {
			b.WriteString("\n")
		}
	}
	writeTableRow(&b, row)

	return lockfile.AtomicReplace(path, []byte(b.String()))
}

func writeTableHeader(b *strings.Builder, header []string) {
	writeTableRow(b, header)
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	writeTableRow(b, sep)
}

func writeTableRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

// RebuildIndex regenerates kind's INDEX.md purely from the filesystem
// contents of its directory, without consulting the old INDEX.md at all.
func (m *Manager) RebuildIndex(kind Kind) error {
	switch kind {
	case KindConfigs:
		return m.rebuildConfigsIndex()
	case KindLogs:
		return m.rebuildLogsIndex()
	case KindSnapshots:
		return m.rebuildSnapshotsIndex()
	default:
		return journalerr.New(journalerr.KindInvalidArgument, fmt.Sprintf("unknown artifact kind %q", kind))
	}
}

func (m *Manager) rebuildConfigsIndex() error {
	basenames, err := os.ReadDir(m.ConfigsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return journalerr.Wrap(journalerr.KindIoFailure, "read configs directory", err)
	}

	var rows [][]string
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
			if f.IsDir() {
				continue
			}
			rows = append(rows, []string{bn.Name(), filepath.Join(dir, f.Name()), "", "", "", ""})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][1] < rows[j][1] })
	return writeWholeIndex(filepath.Join(m.ConfigsDir, "INDEX.md"), configIndexHeader, rows)
}

func (m *Manager) rebuildLogsIndex() error {
	categories, err := os.ReadDir(m.LogsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return journalerr.Wrap(journalerr.KindIoFailure, "read logs directory", err)
	}

	var rows [][]string
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
			if f.IsDir() {
				continue
			}
			info, err := f.Info()
			size := int64(0)
			if err == nil {
				size = info.Size()
			}
			rows = append(rows, []string{cat.Name(), filepath.Join(dir, f.Name()), "", "", fmt.Sprintf("%d", size)})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][1] < rows[j][1] })
	return writeWholeIndex(filepath.Join(m.LogsDir, "INDEX.md"), logIndexHeader, rows)
}

func (m *Manager) rebuildSnapshotsIndex() error {
	files, err := os.ReadDir(m.SnapshotsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return journalerr.Wrap(journalerr.KindIoFailure, "read snapshots directory", err)
	}

	var rows [][]string
	for _, f := range files {
		if f.IsDir() || f.Name() == "INDEX.md" {
			continue
		}
		rows = append(rows, []string{f.Name(), "", ""})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
	return writeWholeIndex(filepath.Join(m.SnapshotsDir, "INDEX.md"), snapshotIndexHeader, rows)
}

func writeWholeIndex(path string, header []string, rows [][]string) error {
	unlock, err := lockfile.ScopedLock(path, 0)
	if err != nil {
		return err
	}
	defer unlock()

	var b strings.Builder
	writeTableHeader(&b, header)
	for _, row := range rows {
		writeTableRow(&b, row)
	}
	return lockfile.AtomicReplace(path, []byte(b.String()))
}
