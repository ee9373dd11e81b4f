package index

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

// filterFields whitelists the equality-predicate filter keys Query accepts.
// Unknown keys are silently dropped rather than reaching the SQL layer —
// this is the injection boundary the field-name whitelist enforces.
var filterFields = map[string]string{
	"author":     "author",
	"outcome":    "outcome",
	"entry_type": "entry_type",
	"template":   "template",
	"tool":       "tool",
	"error_type": "error_type",
}

// orderByFields whitelists the columns Query may sort by.
var orderByFields = map[string]string{
	"timestamp":   "timestamp",
	"entry_id":    "entry_id",
	"author":      "author",
	"outcome":     "outcome",
	"duration_ms": "duration_ms",
}

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// QueryParams is the structured-retrieval request §4.4 describes.
type QueryParams struct {
	Filters    map[string]string
	TextSearch string
	DateFrom   string // resolved YYYY-MM-DD, inclusive
	DateTo     string // resolved YYYY-MM-DD, inclusive
	Limit      int
	Offset     int
	OrderBy    string
	OrderDesc  bool
}

// QueryResult carries the matched rows plus pagination bookkeeping.
type QueryResult struct {
	Entries []*journal.Entry
	Total   int
	HasMore bool
}

// Query performs filtered, paginated, optionally full-text and date-ranged
// retrieval, per §4.4's operation contract.
func (ix *Index) Query(p QueryParams) (*QueryResult, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		return nil, journalerr.New(journalerr.KindInvalidArgument, fmt.Sprintf("limit %d exceeds maximum %d", limit, maxLimit))
	}
	if p.Offset < 0 {
		return nil, journalerr.New(journalerr.KindInvalidArgument, "offset must be >= 0")
	}

	where, args := buildWhere(p)

	orderCol, ok := orderByFields[p.OrderBy]
	if !ok {
		orderCol = "timestamp"
	}
	dir := "ASC"
	if p.OrderDesc {
		dir = "DESC"
	}

	countQuery := `SELECT COUNT(*) FROM entries e` + joinFTS(p.TextSearch) + where
	var total int
	if err := ix.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "count entries", err)
	}

	rowsQuery := selectColumnsAliased + ` FROM entries e` + joinFTS(p.TextSearch) + where +
		fmt.Sprintf(" ORDER BY e.%s %s LIMIT ? OFFSET ?", orderCol, dir)
	rowArgs := append(append([]any{}, args...), limit, p.Offset)

	rows, err := ix.db.Query(rowsQuery, rowArgs...)
	if err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "query entries", err)
	}
	defer rows.Close()

	var result []*journal.Entry
	for rows.Next() {
		e, _, err := scanEntry(rows)
		if err != nil {
			return nil, journalerr.Wrap(journalerr.KindIoFailure, "scan query row", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "iterate query rows", err)
	}

	return &QueryResult{
		Entries: result,
		Total:   total,
		HasMore: p.Offset+len(result) < total,
	}, nil
}

func buildWhere(p QueryParams) (string, []any) {
	var clauses []string
	var args []any

	for key, value := range p.Filters {
		col, ok := filterFields[key]
		if !ok || value == "" {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("e.%s = ?", col))
		args = append(args, value)
	}
	if p.DateFrom != "" {
		clauses = append(clauses, "e.date >= ?")
		args = append(args, p.DateFrom)
	}
	if p.DateTo != "" {
		clauses = append(clauses, "e.date <= ?")
		args = append(args, p.DateTo)
	}
	if p.TextSearch != "" {
		clauses = append(clauses, "entries_fts MATCH ?")
		args = append(args, EscapeFTSQuery(p.TextSearch))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func joinFTS(textSearch string) string {
	if textSearch == "" {
		return ""
	}
	return " JOIN entries_fts ON entries_fts.rowid = e.rowid"
}

const selectColumnsAliased = `SELECT
	e.entry_id, e.date, e.timestamp, e.author, e.entry_type,
	e.context, e.intent, e.action, e.observation, e.analysis, e.next_steps,
	e.outcome, e.template, e.caused_by, e.references_json, e.references_entry,
	e.config_used, e.log_produced, e.tool, e.command, e.duration_ms, e.exit_code,
	e.error_type, e.file_path`
