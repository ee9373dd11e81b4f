package engine

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/journal/internal/index"
	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

// HandoffParams bounds and shapes a session_handoff request.
type HandoffParams struct {
	DateFrom       string
	DateTo         string
	IncludeConfigs bool
	IncludeLogs    bool
	Format         string // "markdown" or "json"
}

// ConfigChangeSummary is one basename's most recent archive within the
// handoff window.
type ConfigChangeSummary struct {
	Basename     string
	LatestReason string
	Count        int
}

// LogCategorySummary counts preserved logs by outcome within one category.
type LogCategorySummary struct {
	Category string
	Outcomes map[journal.LogOutcome]int
}

// HandoffResult is the structured form of a session handoff; Render
// formats it per Format.
type HandoffResult struct {
	DateFrom        string
	DateTo          string
	Entries         []*journal.Entry
	KeyDecisions    []*journal.Entry
	OpenItems       []*journal.Entry
	ConfigChanges   []ConfigChangeSummary
	PreservedLogs   []LogCategorySummary
	Recommendations []string
}

// SessionHandoff computes a summary document over the given window and
// renders it in the requested format.
func (e *Engine) SessionHandoff(p HandoffParams) (*HandoffResult, string, error) {
	p.DateFrom = e.resolveDateToken(p.DateFrom)
	p.DateTo = e.resolveDateToken(p.DateTo)
	qr, err := e.Query(index.QueryParams{
		DateFrom: p.DateFrom, DateTo: p.DateTo,
		OrderBy: "timestamp", OrderDesc: false, Limit: 1000,
	})
	if err != nil {
		return nil, "", err
	}

	result := &HandoffResult{DateFrom: p.DateFrom, DateTo: p.DateTo, Entries: qr.Entries}
	for _, ent := range qr.Entries {
		if ent.Analysis != "" {
			result.KeyDecisions = append(result.KeyDecisions, ent)
		}
		if ent.NextSteps != "" {
			result.OpenItems = append(result.OpenItems, ent)
		}
	}

	if p.IncludeConfigs {
		archives, err := e.Artifacts.ListConfigArchives()
		if err != nil {
			return nil, "", err
		}
		result.ConfigChanges = summarizeConfigChanges(archives, p.DateFrom, p.DateTo)
	}

	if p.IncludeLogs {
		logs, err := e.Artifacts.ListLogRecords()
		if err != nil {
			return nil, "", err
		}
		result.PreservedLogs = summarizeLogs(logs, p.DateFrom, p.DateTo)
	}

	seen := map[string]bool{}
	for _, item := range result.OpenItems {
		if item.NextSteps != "" && !seen[item.NextSteps] {
			seen[item.NextSteps] = true
			result.Recommendations = append(result.Recommendations, item.NextSteps)
			if len(result.Recommendations) >= 5 {
				break
			}
		}
	}

	rendered, err := renderHandoff(result, p.Format)
	if err != nil {
		return nil, "", err
	}
	return result, rendered, nil
}

func summarizeConfigChanges(archives []*journal.ConfigArchive, from, to string) []ConfigChangeSummary {
	latest := map[string]*journal.ConfigArchive{}
	counts := map[string]int{}
	for _, a := range archives {
		if !inDateRange(a.Timestamp, from, to) {
			continue
		}
		counts[a.OriginalPath]++
		if cur, ok := latest[a.OriginalPath]; !ok || a.Timestamp.After(cur.Timestamp) {
			latest[a.OriginalPath] = a
		}
	}
	names := make([]string, 0, len(latest))
	for name := range latest {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]ConfigChangeSummary, 0, len(names))
	for _, name := range names {
		out = append(out, ConfigChangeSummary{Basename: name, LatestReason: latest[name].Reason, Count: counts[name]})
	}
	return out
}

func summarizeLogs(logs []*journal.LogRecord, from, to string) []LogCategorySummary {
	byCategory := map[string]map[journal.LogOutcome]int{}
	for _, l := range logs {
		if !inDateRange(l.Timestamp, from, to) {
			continue
		}
		if byCategory[l.Category] == nil {
			byCategory[l.Category] = map[journal.LogOutcome]int{}
		}
		byCategory[l.Category][l.Outcome]++
	}
	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	out := make([]LogCategorySummary, 0, len(categories))
	for _, cat := range categories {
		out = append(out, LogCategorySummary{Category: cat, Outcomes: byCategory[cat]})
	}
	return out
}

func renderHandoff(r *HandoffResult, format string) (string, error) {
	if format == "json" {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", journalerr.Wrap(journalerr.KindIoFailure, "marshal handoff", err)
		}
		return string(data), nil
	}
	return renderHandoffMarkdown(r), nil
}

func renderHandoffMarkdown(r *HandoffResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Summary\n\n%d entries, %d key decisions, %d open items between %s and %s.\n\n",
		len(r.Entries), len(r.KeyDecisions), len(r.OpenItems), r.DateFrom, r.DateTo)

	b.WriteString("## Key Decisions\n\n")
	for _, ent := range r.KeyDecisions {
		fmt.Fprintf(&b, "- %s: %s\n", ent.ID, shorten(ent.Analysis, 120))
	}
	b.WriteString("\n## Journal Entries\n\n")
	for _, ent := range r.Entries {
		fmt.Fprintf(&b, "- %s (%s) %s — %s\n", ent.ID, ent.Timestamp.Format("15:04:05"), ent.Outcome, shorten(ent.Context, 80))
	}
	b.WriteString("\n## Configuration Changes\n\n")
	for _, c := range r.ConfigChanges {
		fmt.Fprintf(&b, "- %s: %s (%d archives)\n", c.Basename, c.LatestReason, c.Count)
	}
	b.WriteString("\n## Preserved Logs\n\n")
	for _, l := range r.PreservedLogs {
		fmt.Fprintf(&b, "- %s: %s\n", l.Category, formatOutcomeCounts(l.Outcomes))
	}
	b.WriteString("\n## Open Items\n\n")
	for _, ent := range r.OpenItems {
		fmt.Fprintf(&b, "- %s: %s\n", ent.ID, shorten(ent.NextSteps, 120))
	}
	b.WriteString("\n## Recommendations\n\n")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	return b.String()
}

func formatOutcomeCounts(counts map[journal.LogOutcome]int) string {
	outcomes := make([]string, 0, len(counts))
	for o := range counts {
		outcomes = append(outcomes, string(o))
	}
	sort.Strings(outcomes)

	parts := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		parts = append(parts, fmt.Sprintf("%s=%d", o, counts[journal.LogOutcome(o)]))
	}
	return strings.Join(parts, ", ")
}
