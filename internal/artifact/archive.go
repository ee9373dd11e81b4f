package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/internal/lockfile"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

// ArchiveConfig copies filePath's current bytes into a content-hashed,
// timestamped archive under {configs}/{basename}/, refusing to write a
// byte-identical duplicate of a prior archive for the same path.
func (m *Manager) ArchiveConfig(filePath, reason, journalEntry, stage string) (*journal.ConfigArchive, error) {
	if reason == "" {
		return nil, journalerr.New(journalerr.KindInvalidArgument, "reason must not be empty")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "read config file", err)
	}
	hash := sha256Hex(data)

	basename := filepath.Base(filePath)
	dir := filepath.Join(m.ConfigsDir, basename)

	if priorPath, found, err := findByHash(dir, hash); err != nil {
		return nil, err
	} else if found {
		return nil, journalerr.Wrap(journalerr.KindDuplicateContent, fmt.Sprintf("already archived at %s", priorPath), nil)
	}

	ext := filepath.Ext(filePath)
	name := fmt.Sprintf("%s_%s%s", filenameTimestamp(m.Clock.Now()), slugify(reason), ext)
	archivePath := filepath.Join(dir, name)

	if err := lockfile.AtomicReplace(archivePath, data); err != nil {
		return nil, err
	}

	archive := &journal.ConfigArchive{
		OriginalPath: filePath,
		ArchivePath:  archivePath,
		Timestamp:    m.Clock.Now(),
		ContentHash:  hash,
		Reason:       reason,
		JournalEntry: journalEntry,
		Stage:        stage,
	}

	if err := m.appendConfigIndex(archive); err != nil {
		return nil, err
	}
	return archive, nil
}

// findByHash scans dir's existing archives for one whose content hash
// matches target, returning its path if found.
func findByHash(dir, target string) (string, bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, journalerr.Wrap(journalerr.KindIoFailure, "scan archive directory", err)
	}
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		path := filepath.Join(dir, de.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if sha256Hex(data) == target {
			return path, true, nil
		}
	}
	return "", false, nil
}

// ActivateConfig copies archivePath's bytes onto targetPath, archiving
// targetPath's prior contents first under a reason derived from the
// caller's own (tolerating a duplicate-content refusal when the current
// file already matches a prior archive). journalEntry is required,
// enforcing that activation is always documented.
func (m *Manager) ActivateConfig(archivePath, targetPath, reason, journalEntry string) (supersededPath string, err error) {
	if journalEntry == "" {
		return "", journalerr.New(journalerr.KindInvalidArgument, "journal_entry is required to activate a config")
	}
	if reason == "" {
		reason = "activation"
	}

	if _, statErr := os.Stat(targetPath); statErr == nil {
		prior, archErr := m.ArchiveConfig(targetPath, "pre-activation: "+reason, journalEntry, "")
		if archErr != nil && !journalerr.Is(archErr, journalerr.KindDuplicateContent) {
			return "", archErr
		}
		if prior != nil {
			supersededPath = prior.ArchivePath
		}
	}

	data, err := os.ReadFile(archivePath)
	if err != nil {
		return "", journalerr.Wrap(journalerr.KindIoFailure, "read archive", err)
	}
	if err := lockfile.AtomicReplace(targetPath, data); err != nil {
		return "", err
	}

	return supersededPath, nil
}
