package index

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mesh-intelligence/journal/internal/codec"
	"github.com/mesh-intelligence/journal/internal/journalerr"
)

var dailyFilePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.md$`)

// RebuildResult summarizes a Rebuild pass.
type RebuildResult struct {
	FilesProcessed int
	EntriesIndexed int
	Errors         int
}

// ProgressFunc receives one notification per daily file, carrying a
// non-nil err only when that file's parse failed; the rebuild continues
// regardless.
type ProgressFunc func(filePath string, err error)

// Rebuild clears the index and reconstructs it by reparsing every daily
// file under journalDir, skipping INDEX.md and hidden files. A parse
// failure on one file is reported to progress and does not abort the
// rebuild. The whole pass runs in a single transaction, committed once at
// the end, so a rebuild is all-or-nothing with respect to readers.
func (ix *Index) Rebuild(journalDir string, progress ProgressFunc) (RebuildResult, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	entries, err := os.ReadDir(journalDir)
	if err != nil {
		if os.IsNotExist(err) {
			return RebuildResult{}, nil
		}
		return RebuildResult{}, journalerr.Wrap(journalerr.KindIoFailure, "read journal directory", err)
	}

	tx, err := ix.db.Begin()
	if err != nil {
		return RebuildResult{}, journalerr.Wrap(journalerr.KindIoFailure, "begin rebuild transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return RebuildResult{}, journalerr.Wrap(journalerr.KindIoFailure, "clear entries", err)
	}

	var result RebuildResult
	for _, de := range entries {
		name := de.Name()
		if de.IsDir() || strings.HasPrefix(name, ".") || name == "INDEX.md" {
			continue
		}
		if !dailyFilePattern.MatchString(name) {
			continue
		}

		path := filepath.Join(journalDir, name)
		result.FilesProcessed++

		content, err := os.ReadFile(path)
		if err != nil {
			result.Errors++
			if progress != nil {
				progress(path, err)
			}
			continue
		}

		sections := codec.SplitSections(content)
		fileHadError := false
		for _, section := range sections {
			e, err := codec.Decode(section)
			if err != nil {
				fileHadError = true
				continue
			}
			if err := insertEntryTx(tx, e, path); err != nil {
				fileHadError = true
				continue
			}
			result.EntriesIndexed++
		}
		if fileHadError {
			result.Errors++
			if progress != nil {
				progress(path, journalerr.New(journalerr.KindCodecError, "one or more sections failed to parse"))
			}
		} else if progress != nil {
			progress(path, nil)
		}
	}

	if err := tx.Commit(); err != nil {
		return RebuildResult{}, journalerr.Wrap(journalerr.KindIoFailure, "commit rebuild", err)
	}
	return result, nil
}
