// Package index implements the secondary relational + full-text store
// derived from the markdown journal corpus: a single SQLite database at
// {journal}/.index.db, one connection per engine instance.
package index

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

// Index wraps the single SQLite connection backing queries, full-text
// search, and aggregation over indexed entries.
type Index struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (creating if needed) the index database at path, applies
// pending migrations, and sets WAL mode with a 5-second busy timeout.
func Open(path string) (*Index, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "open index database", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "enable WAL mode", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "migrate index schema", err)
	}

	return &Index{db: db}, nil
}

// Close releases the underlying database handle.
func (ix *Index) Close() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.db.Close()
}

// IndexEntry upserts entry by id, keeping the FTS mirror in sync via the
// schema's AFTER triggers; the main row write and its trigger-driven FTS
// write occur in one transaction.
func (ix *Index) IndexEntry(e *journal.Entry, filePath string) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	tx, err := ix.db.Begin()
	if err != nil {
		return journalerr.Wrap(journalerr.KindIoFailure, "begin transaction", err)
	}
	defer tx.Rollback()

	if err := insertEntryTx(tx, e, filePath); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return journalerr.Wrap(journalerr.KindIoFailure, "commit entry index", err)
	}
	return nil
}

// execer abstracts *sql.Tx's Exec method so insertEntryTx can be shared
// between IndexEntry's single-entry transaction and Rebuild's bulk one.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertEntryTx(tx execer, e *journal.Entry, filePath string) error {
	causedBy, err := json.Marshal(e.CausedBy)
	if err != nil {
		return journalerr.Wrap(journalerr.KindIoFailure, "marshal caused_by", err)
	}
	refs, err := json.Marshal(e.References)
	if err != nil {
		return journalerr.Wrap(journalerr.KindIoFailure, "marshal references", err)
	}

	if _, err := tx.Exec(`DELETE FROM entries WHERE entry_id = ?`, e.ID); err != nil {
		return journalerr.Wrap(journalerr.KindIoFailure, "clear prior row", err)
	}

	_, err = tx.Exec(`INSERT INTO entries (
		entry_id, date, timestamp, author, entry_type,
		context, intent, action, observation, analysis, next_steps,
		outcome, template, caused_by, references_json, references_entry,
		config_used, log_produced, tool, command, duration_ms, exit_code,
		error_type, file_path
	) VALUES (?,?,?,?,?, ?,?,?,?,?,?, ?,?,?,?,?, ?,?,?,?,?,?, ?,?)`,
		e.ID, e.Date(), e.Timestamp.Format(timestampFormat), e.Author, string(e.Kind),
		e.Context, e.Intent, e.Action, e.Observation, e.Analysis, e.NextSteps,
		string(e.Outcome), e.Template, string(causedBy), string(refs), e.ReferencesEntry,
		e.ConfigUsed, e.LogProduced, e.Tool, e.Command, nullableInt64(e.DurationMs), nullableInt(e.ExitCode),
		e.ErrorType, filePath,
	)
	if err != nil {
		return journalerr.Wrap(journalerr.KindIoFailure, "insert entry row", err)
	}
	return nil
}

// DeleteEntry removes entry_id's row and, via the delete trigger, its FTS
// mirror. Rebuild does not call it; it clears the table in its own transaction.
func (ix *Index) DeleteEntry(id string) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if _, err := ix.db.Exec(`DELETE FROM entries WHERE entry_id = ?`, id); err != nil {
		return journalerr.Wrap(journalerr.KindIoFailure, "delete entry row", err)
	}
	return nil
}

// Get returns the single entry row for id, or nil if absent.
func (ix *Index) Get(id string) (*journal.Entry, string, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	row := ix.db.QueryRow(selectColumns+` FROM entries WHERE entry_id = ?`, id)
	e, filePath, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", journalerr.Wrap(journalerr.KindIoFailure, "scan entry row", err)
	}
	return e, filePath, nil
}

func nullableInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
