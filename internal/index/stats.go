package index

import "github.com/mesh-intelligence/journal/internal/journalerr"

// Stats is the overall-counts summary the `stats` operation and CLI
// command surface for a quick health check of the index.
type Stats struct {
	TotalEntries     int
	TotalAmendments  int
	DistinctAuthors  int
	DistinctTools    int
	EarliestDate     string
	LatestDate       string
}

// Stats returns overall counts for UX: totals by entry kind, distinct
// author/tool cardinality, and the date range covered.
func (ix *Index) Stats() (Stats, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	var s Stats
	row := ix.db.QueryRow(`SELECT
		COUNT(*) FILTER (WHERE entry_type = 'entry'),
		COUNT(*) FILTER (WHERE entry_type = 'amendment'),
		COUNT(DISTINCT author),
		COUNT(DISTINCT NULLIF(tool, '')),
		COALESCE(MIN(date), ''),
		COALESCE(MAX(date), '')
		FROM entries`)

	if err := row.Scan(&s.TotalEntries, &s.TotalAmendments, &s.DistinctAuthors, &s.DistinctTools, &s.EarliestDate, &s.LatestDate); err != nil {
		return Stats{}, journalerr.Wrap(journalerr.KindIoFailure, "compute stats", err)
	}
	return s, nil
}
