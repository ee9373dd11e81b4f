package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

// PreserveLog moves filePath into {logs}/{category}/{timestamp}_{outcome}.log,
// recording its size, and appends a row to logs/INDEX.md. After success the
// original path no longer exists.
func (m *Manager) PreserveLog(filePath, category string, outcome journal.LogOutcome) (*journal.LogRecord, error) {
	if !journal.ValidLogOutcome(outcome) {
		return nil, journalerr.New(journalerr.KindInvalidArgument, fmt.Sprintf("invalid log outcome %q", outcome))
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "stat log file", err)
	}

	dir := filepath.Join(m.LogsDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "create log category directory", err)
	}

	now := m.Clock.Now()
	preservedPath := filepath.Join(dir, fmt.Sprintf("%s_%s.log", filenameTimestamp(now), outcome))

	if err := moveFile(filePath, preservedPath); err != nil {
		return nil, err
	}

	record := &journal.LogRecord{
		OriginalPath:  filePath,
		PreservedPath: preservedPath,
		Timestamp:     now,
		Category:      category,
		Outcome:       outcome,
		SizeBytes:     info.Size(),
	}

	if err := m.appendLogIndex(record); err != nil {
		return nil, err
	}
	return record, nil
}

// moveFile renames src to dst, falling back to copy-then-remove when the
// two paths are on different filesystems (os.Rename returns EXDEV there).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return journalerr.Wrap(journalerr.KindIoFailure, "open source log", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return journalerr.Wrap(journalerr.KindIoFailure, "create destination log", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return journalerr.Wrap(journalerr.KindIoFailure, "copy log contents", err)
	}
	if err := out.Close(); err != nil {
		return journalerr.Wrap(journalerr.KindIoFailure, "close destination log", err)
	}
	if err := os.Remove(src); err != nil {
		return journalerr.Wrap(journalerr.KindIoFailure, "remove source log after copy", err)
	}
	return nil
}
