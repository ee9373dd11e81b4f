package engine

import (
	"time"

	"github.com/mesh-intelligence/journal/internal/index"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

// resolveDateToken expands the symbolic tokens "today" and "yesterday"
// against the engine's clock; any other value (including "") passes
// through unchanged, so absolute YYYY-MM-DD values and empty bounds work
// without special-casing.
func (e *Engine) resolveDateToken(token string) string {
	switch token {
	case "today":
		return e.Clock.Now().Format("2006-01-02")
	case "yesterday":
		return e.Clock.Now().Add(-24 * time.Hour).Format("2006-01-02")
	default:
		return token
	}
}

// Query delegates to the index after resolving date tokens.
func (e *Engine) Query(p index.QueryParams) (*index.QueryResult, error) {
	p.DateFrom = e.resolveDateToken(p.DateFrom)
	p.DateTo = e.resolveDateToken(p.DateTo)
	return e.Index.Query(p)
}

// Stats delegates directly to the index.
func (e *Engine) Stats() (index.Stats, error) {
	return e.Index.Stats()
}

// Active delegates directly to the index.
func (e *Engine) Active(thresholdMs int64, toolFilter string) ([]*journal.Entry, error) {
	return e.Index.Active(thresholdMs, toolFilter)
}

// SearchParams is the legacy full-text search façade's request shape.
type SearchParams struct {
	Query    string
	Author   string
	DateFrom string
	DateTo   string
}

// Search delegates to Query with text_search set from Query and an
// optional author filter, per §4.6's "legacy façade" definition.
func (e *Engine) Search(p SearchParams) (*index.QueryResult, error) {
	filters := map[string]string{}
	if p.Author != "" {
		filters["author"] = p.Author
	}
	return e.Query(index.QueryParams{
		TextSearch: p.Query,
		Filters:    filters,
		DateFrom:   p.DateFrom,
		DateTo:     p.DateTo,
	})
}
