package rpc

import (
	"encoding/json"

	"github.com/mesh-intelligence/journal/internal/engine"
)

type readRequest struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	DateFrom       string `json:"date_from"`
	DateTo         string `json:"date_to"`
	IncludeContent bool   `json:"include_content"`
}

func handleRead(e *engine.Engine, params json.RawMessage) (any, error) {
	var req readRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	return e.Read(engine.ReadParams{
		ID: req.ID, Date: req.Date, DateFrom: req.DateFrom, DateTo: req.DateTo,
		IncludeContent: req.IncludeContent,
	})
}
