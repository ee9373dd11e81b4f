package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mesh-intelligence/journal/pkg/journal"
)

// writeEntries renders entries to w in the requested format: table (the
// CLI default), json, jsonl, csv, or compact, per spec.md §6's export
// format list.
func writeEntries(w io.Writer, entries []*journal.Entry, format string) error {
	switch format {
	case "", "table":
		return writeEntriesTable(w, entries)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "jsonl":
		enc := json.NewEncoder(w)
		for _, e := range entries {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	case "csv":
		return writeEntriesCSV(w, entries)
	case "compact":
		for _, e := range entries {
			fmt.Fprintf(w, "%s %s %-8s %s\n", e.ID, e.Author, e.Outcome, shorten(e.Context, 100))
		}
		return nil
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func writeEntriesTable(w io.Writer, entries []*journal.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIMESTAMP\tAUTHOR\tOUTCOME\tTOOL\tCONTEXT")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Timestamp.Format("2006-01-02T15:04:05"), e.Author, e.Outcome, e.Tool, shorten(e.Context, 60))
	}
	return tw.Flush()
}

func writeEntriesCSV(w io.Writer, entries []*journal.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "timestamp", "author", "outcome", "tool", "context"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{
			e.ID, e.Timestamp.Format("2006-01-02T15:04:05"), e.Author, string(e.Outcome), e.Tool, e.Context,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
