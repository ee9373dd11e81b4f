package index

import (
	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

// FindCausedBy returns every entry whose caused_by list contains id — the
// forward edge of the causality graph, which isn't persisted anywhere and
// so requires a full scan of the JSON-encoded column.
func (ix *Index) FindCausedBy(id string) ([]*journal.Entry, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	rows, err := ix.db.Query(selectColumnsAliased+` FROM entries e WHERE e.caused_by LIKE ?`, `%"`+id+`"%`)
	if err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "scan for forward causality", err)
	}
	defer rows.Close()

	var result []*journal.Entry
	for rows.Next() {
		e, _, err := scanEntry(rows)
		if err != nil {
			return nil, journalerr.Wrap(journalerr.KindIoFailure, "scan causality row", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}
