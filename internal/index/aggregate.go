package index

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/journal/internal/journalerr"
)

// groupByFields whitelists the columns Aggregate may group on.
var groupByFields = map[string]string{
	"tool": "tool", "outcome": "outcome", "author": "author",
	"template": "template", "date": "date", "entry_type": "entry_type",
	"error_type": "error_type",
}

// numericFields whitelists the columns a sum/avg/min/max aggregation may
// target.
var numericFields = map[string]string{
	"duration_ms": "duration_ms", "exit_code": "exit_code",
}

// AggregateParams is the grouped-statistics request §4.4 describes.
type AggregateParams struct {
	GroupBy      string // "" means no grouping
	Aggregations []string
	Filters      map[string]string
	DateFrom     string
	DateTo       string
}

// AggregateRow is one group's computed statistics, keyed by aggregation
// label ("count", "avg:duration_ms", ...).
type AggregateRow struct {
	Group  string
	Values map[string]float64
}

// Aggregate computes grouped or overall statistics per §4.4.
func (ix *Index) Aggregate(p AggregateParams) ([]AggregateRow, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	groupCol := ""
	if p.GroupBy != "" {
		col, ok := groupByFields[p.GroupBy]
		if !ok {
			return nil, journalerr.New(journalerr.KindInvalidArgument, fmt.Sprintf("unknown group_by %q", p.GroupBy))
		}
		groupCol = col
	}

	aggExprs, aggLabels := buildAggregations(p.Aggregations)

	where, args := buildWhere(QueryParams{Filters: p.Filters, DateFrom: p.DateFrom, DateTo: p.DateTo})

	var query string
	if groupCol != "" {
		query = fmt.Sprintf("SELECT COALESCE(e.%s, '(none)') AS grp, %s FROM entries e%s GROUP BY grp",
			groupCol, strings.Join(aggExprs, ", "), where)
	} else {
		query = fmt.Sprintf("SELECT %s FROM entries e%s", strings.Join(aggExprs, ", "), where)
	}

	rows, err := ix.db.Query(query, args...)
	if err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "aggregate query", err)
	}
	defer rows.Close()

	var result []AggregateRow
	for rows.Next() {
		var grp string
		vals := make([]any, len(aggLabels))
		dest := make([]any, 0, len(aggLabels)+1)
		if groupCol != "" {
			dest = append(dest, &grp)
		}
		for i := range vals {
			dest = append(dest, &vals[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, journalerr.Wrap(journalerr.KindIoFailure, "scan aggregate row", err)
		}
		values := make(map[string]float64, len(aggLabels))
		for i, label := range aggLabels {
			values[label] = toFloat(vals[i])
		}
		row := AggregateRow{Values: values}
		if groupCol != "" {
			row.Group = grp
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "iterate aggregate rows", err)
	}
	return result, nil
}

// buildAggregations validates each requested aggregation item, dropping
// invalid ones silently; if all drop, count alone is used.
func buildAggregations(requested []string) (exprs []string, labels []string) {
	for _, item := range requested {
		if item == "count" {
			exprs = append(exprs, "COUNT(*) AS agg_count")
			labels = append(labels, "count")
			continue
		}
		parts := strings.SplitN(item, ":", 2)
		if len(parts) != 2 {
			continue
		}
		op, field := strings.ToLower(parts[0]), parts[1]
		if op != "avg" && op != "sum" && op != "min" && op != "max" {
			continue
		}
		col, ok := numericFields[field]
		if !ok {
			continue
		}
		label := op + ":" + field
		alias := "agg_" + strings.ReplaceAll(label, ":", "_")
		exprs = append(exprs, fmt.Sprintf("%s(e.%s) AS %s", strings.ToUpper(op), col, alias))
		labels = append(labels, label)
	}
	if len(exprs) == 0 {
		exprs = []string{"COUNT(*) AS agg_count"}
		labels = []string{"count"}
	}
	return exprs, labels
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}
