package index

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/mesh-intelligence/journal/pkg/journal"
)

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(timestampFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// timestampFormat is the exact layout stored in the entries.timestamp
// column; this fixed-width microsecond layout sorts lexicographically the same as chronologically
// for a fixed-offset UTC timestamp, which the query layer relies on.
const timestampFormat = "2006-01-02T15:04:05.000000Z07:00"

const selectColumns = `SELECT
	entry_id, date, timestamp, author, entry_type,
	context, intent, action, observation, analysis, next_steps,
	outcome, template, caused_by, references_json, references_entry,
	config_used, log_produced, tool, command, duration_ms, exit_code,
	error_type, file_path`

// scanner abstracts *sql.Row and *sql.Rows, both of which expose Scan.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*journal.Entry, string, error) {
	var (
		e                                  journal.Entry
		dateStr, tsStr, kind, outcome      string
		causedByJSON, refsJSON             string
		durationMs, exitCode               sql.NullInt64
		filePath                           string
	)
	err := s.Scan(
		&e.ID, &dateStr, &tsStr, &e.Author, &kind,
		&e.Context, &e.Intent, &e.Action, &e.Observation, &e.Analysis, &e.NextSteps,
		&outcome, &e.Template, &causedByJSON, &refsJSON, &e.ReferencesEntry,
		&e.ConfigUsed, &e.LogProduced, &e.Tool, &e.Command, &durationMs, &exitCode,
		&e.ErrorType, &filePath,
	)
	if err != nil {
		return nil, "", err
	}

	e.Kind = journal.EntryKind(kind)
	e.Outcome = journal.Outcome(outcome)
	ts, parseErr := parseTimestamp(tsStr)
	if parseErr == nil {
		e.Timestamp = ts
	}
	if causedByJSON != "" {
		_ = json.Unmarshal([]byte(causedByJSON), &e.CausedBy)
	}
	if refsJSON != "" {
		_ = json.Unmarshal([]byte(refsJSON), &e.References)
	}
	if durationMs.Valid {
		v := durationMs.Int64
		e.DurationMs = &v
	}
	if exitCode.Valid {
		v := int(exitCode.Int64)
		e.ExitCode = &v
	}

	return &e, filePath, nil
}
