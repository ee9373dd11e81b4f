package engine

import (
	"os"
	"time"

	"github.com/mesh-intelligence/journal/internal/codec"
	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

// ReadParams selects entries by exactly one of its three modes: a single
// id, a single date, or an inclusive date range.
type ReadParams struct {
	ID             string
	Date           string
	DateFrom       string
	DateTo         string
	IncludeContent bool
}

// ReadEntry pairs a decoded entry with its raw markdown section, present
// only when IncludeContent was requested.
type ReadEntry struct {
	Entry *journal.Entry
	Raw   string
}

// Read resolves entries by id, by single date, or by date range, reading
// directly from the daily files that are the system's source of truth.
func (e *Engine) Read(p ReadParams) ([]ReadEntry, error) {
	modes := 0
	if p.ID != "" {
		modes++
	}
	if p.Date != "" {
		modes++
	}
	if p.DateFrom != "" || p.DateTo != "" {
		modes++
	}
	if modes != 1 {
		return nil, journalerr.New(journalerr.KindInvalidArgument, "read requires exactly one of id, date, or date_from/date_to")
	}

	switch {
	case p.ID != "":
		return e.readByID(p.ID, p.IncludeContent)
	case p.Date != "":
		if _, err := os.Stat(e.dailyFilePath(p.Date)); os.IsNotExist(err) {
			return nil, journalerr.New(journalerr.KindNotFound, "no journal file for date "+p.Date)
		}
		return e.readByDate(p.Date, p.IncludeContent)
	default:
		if p.DateFrom == "" || p.DateTo == "" {
			return nil, journalerr.New(journalerr.KindInvalidArgument, "date range read requires both date_from and date_to")
		}
		return e.readByRange(p.DateFrom, p.DateTo, p.IncludeContent)
	}
}

func (e *Engine) readByID(id string, includeContent bool) ([]ReadEntry, error) {
	ent, filePath, err := e.Index.Get(id)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, journalerr.New(journalerr.KindNotFound, "entry "+id+" not found")
	}
	if !includeContent {
		return []ReadEntry{{Entry: ent}}, nil
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "read daily file", err)
	}
	for _, section := range codec.SplitSections(content) {
		decoded, err := codec.Decode(section)
		if err == nil && decoded.ID == id {
			return []ReadEntry{{Entry: decoded, Raw: string(section)}}, nil
		}
	}
	return []ReadEntry{{Entry: ent}}, nil
}

// readByDate tolerates a missing daily file, returning no entries rather
// than an error — the single-date Read caller checks existence itself and
// reports NotFound, while readByRange relies on this to skip date gaps.
func (e *Engine) readByDate(date string, includeContent bool) ([]ReadEntry, error) {
	content, err := os.ReadFile(e.dailyFilePath(date))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "read daily file", err)
	}

	var result []ReadEntry
	for _, section := range codec.SplitSections(content) {
		ent, err := codec.Decode(section)
		if err != nil {
			return nil, journalerr.Wrap(journalerr.KindCodecError, "parse daily file section", err)
		}
		re := ReadEntry{Entry: ent}
		if includeContent {
			re.Raw = string(section)
		}
		result = append(result, re)
	}
	return result, nil
}

func (e *Engine) readByRange(dateFrom, dateTo string, includeContent bool) ([]ReadEntry, error) {
	from, err := time.Parse("2006-01-02", dateFrom)
	if err != nil {
		return nil, journalerr.New(journalerr.KindInvalidArgument, "invalid date_from")
	}
	to, err := time.Parse("2006-01-02", dateTo)
	if err != nil {
		return nil, journalerr.New(journalerr.KindInvalidArgument, "invalid date_to")
	}
	if to.Before(from) {
		return nil, journalerr.New(journalerr.KindInvalidArgument, "date_to precedes date_from")
	}

	var result []ReadEntry
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		day, err := e.readByDate(d.Format("2006-01-02"), includeContent)
		if err != nil {
			return nil, err
		}
		result = append(result, day...)
	}
	return result, nil
}
