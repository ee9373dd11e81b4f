package index

import (
	"fmt"

	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

// Active returns entries whose duration_ms is at least thresholdMs,
// optionally restricted to a single tool, ordered by duration_ms
// descending — the "what's still running / what took the longest" view.
func (ix *Index) Active(thresholdMs int64, toolFilter string) ([]*journal.Entry, error) {
	if thresholdMs < 0 {
		return nil, journalerr.New(journalerr.KindInvalidArgument, "threshold_ms must be >= 0")
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	query := selectColumnsAliased + ` FROM entries e WHERE e.duration_ms >= ?`
	args := []any{thresholdMs}
	if toolFilter != "" {
		query += " AND e.tool = ?"
		args = append(args, toolFilter)
	}
	query += " ORDER BY e.duration_ms DESC"

	rows, err := ix.db.Query(query, args...)
	if err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, fmt.Sprintf("active query threshold=%d", thresholdMs), err)
	}
	defer rows.Close()

	var result []*journal.Entry
	for rows.Next() {
		e, _, err := scanEntry(rows)
		if err != nil {
			return nil, journalerr.Wrap(journalerr.KindIoFailure, "scan active row", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}
