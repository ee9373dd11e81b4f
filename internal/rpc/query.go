package rpc

import (
	"encoding/json"

	"github.com/mesh-intelligence/journal/internal/engine"
	"github.com/mesh-intelligence/journal/internal/index"
)

type queryRequest struct {
	Filters    map[string]string `json:"filters"`
	TextSearch string            `json:"text_search"`
	DateFrom   string            `json:"date_from"`
	DateTo     string            `json:"date_to"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
	OrderBy    string            `json:"order_by"`
	OrderDesc  bool              `json:"order_desc"`
}

func handleQuery(e *engine.Engine, params json.RawMessage) (any, error) {
	var req queryRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	return e.Query(index.QueryParams{
		Filters: req.Filters, TextSearch: req.TextSearch,
		DateFrom: req.DateFrom, DateTo: req.DateTo,
		Limit: req.Limit, Offset: req.Offset,
		OrderBy: req.OrderBy, OrderDesc: req.OrderDesc,
	})
}

type searchRequest struct {
	Query    string `json:"query"`
	Author   string `json:"author"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

func handleSearch(e *engine.Engine, params json.RawMessage) (any, error) {
	var req searchRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	return e.Search(engine.SearchParams{
		Query: req.Query, Author: req.Author, DateFrom: req.DateFrom, DateTo: req.DateTo,
	})
}

func handleStats(e *engine.Engine, _ json.RawMessage) (any, error) {
	return e.Stats()
}

type activeRequest struct {
	ThresholdMs int64  `json:"threshold_ms"`
	Tool        string `json:"tool"`
}

func handleActive(e *engine.Engine, params json.RawMessage) (any, error) {
	var req activeRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	return e.Active(req.ThresholdMs, req.Tool)
}
