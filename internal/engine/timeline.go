package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/mesh-intelligence/journal/internal/index"
)

// EventType tags one entry in a Timeline's merged feed.
type EventType string

const (
	EventEntry         EventType = "entry"
	EventAmendment     EventType = "amendment"
	EventConfigArchive EventType = "config_archive"
	EventLog           EventType = "log"
	EventSnapshot      EventType = "snapshot"
)

// Event is one row of the interleaved timeline feed.
type Event struct {
	Type      EventType
	Timestamp time.Time
	RefID     string
	Summary   string
}

// TimelineParams bounds and filters a Timeline request.
type TimelineParams struct {
	DateFrom   string
	DateTo     string
	EventTypes []EventType // empty means all types
	Limit      int
}

const defaultTimelineLimit = 100

// Timeline interleaves journal entries/amendments with config archives,
// preserved logs, and snapshots, sorted by timestamp descending and capped
// at Limit (default 100).
func (e *Engine) Timeline(p TimelineParams) ([]Event, error) {
	p.DateFrom = e.resolveDateToken(p.DateFrom)
	p.DateTo = e.resolveDateToken(p.DateTo)
	limit := p.Limit
	if limit <= 0 {
		limit = defaultTimelineLimit
	}
	wanted := eventTypeSet(p.EventTypes)

	var events []Event

	if wanted[EventEntry] || wanted[EventAmendment] || len(wanted) == 0 {
		result, err := e.Query(index.QueryParams{
			DateFrom: p.DateFrom, DateTo: p.DateTo,
			OrderBy: "timestamp", OrderDesc: true, Limit: 1000,
		})
		if err != nil {
			return nil, err
		}
		for _, ent := range result.Entries {
			evType := EventEntry
			if string(ent.Kind) == "amendment" {
				evType = EventAmendment
			}
			if len(wanted) > 0 && !wanted[evType] {
				continue
			}
			events = append(events, Event{
				Type:      evType,
				Timestamp: ent.Timestamp,
				RefID:     ent.ID,
				Summary:   fmt.Sprintf("%s by %s: %s", ent.ID, ent.Author, shorten(ent.Context, 80)),
			})
		}
	}

	if wanted[EventConfigArchive] || len(wanted) == 0 {
		archives, err := e.Artifacts.ListConfigArchives()
		if err != nil {
			return nil, err
		}
		for _, a := range archives {
			if !inDateRange(a.Timestamp, p.DateFrom, p.DateTo) {
				continue
			}
			events = append(events, Event{
				Type:      EventConfigArchive,
				Timestamp: a.Timestamp,
				RefID:     a.ArchivePath,
				Summary:   fmt.Sprintf("config archived: %s (%s)", a.OriginalPath, a.Reason),
			})
		}
	}

	if wanted[EventLog] || len(wanted) == 0 {
		logs, err := e.Artifacts.ListLogRecords()
		if err != nil {
			return nil, err
		}
		for _, l := range logs {
			if !inDateRange(l.Timestamp, p.DateFrom, p.DateTo) {
				continue
			}
			events = append(events, Event{
				Type:      EventLog,
				Timestamp: l.Timestamp,
				RefID:     l.PreservedPath,
				Summary:   fmt.Sprintf("log preserved: %s/%s (%s)", l.Category, l.Outcome, l.PreservedPath),
			})
		}
	}

	if wanted[EventSnapshot] || len(wanted) == 0 {
		snaps, err := e.Artifacts.ListSnapshots()
		if err != nil {
			return nil, err
		}
		for _, s := range snaps {
			if !inDateRange(s.Timestamp, p.DateFrom, p.DateTo) {
				continue
			}
			events = append(events, Event{
				Type:      EventSnapshot,
				Timestamp: s.Timestamp,
				RefID:     s.Name,
				Summary:   fmt.Sprintf("state snapshot: %s", s.Name),
			})
		}
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Timestamp.After(events[j].Timestamp) })
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func eventTypeSet(types []EventType) map[EventType]bool {
	set := make(map[EventType]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

func inDateRange(t time.Time, from, to string) bool {
	day := t.Format("2006-01-02")
	if from != "" && day < from {
		return false
	}
	if to != "" && day > to {
		return false
	}
	return true
}

func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
