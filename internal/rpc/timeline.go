package rpc

import (
	"encoding/json"

	"github.com/mesh-intelligence/journal/internal/engine"
)

type timelineRequest struct {
	DateFrom   string   `json:"date_from"`
	DateTo     string   `json:"date_to"`
	EventTypes []string `json:"event_types"`
	Limit      int      `json:"limit"`
}

func handleTimeline(e *engine.Engine, params json.RawMessage) (any, error) {
	var req timelineRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	types := make([]engine.EventType, 0, len(req.EventTypes))
	for _, t := range req.EventTypes {
		types = append(types, engine.EventType(t))
	}
	return e.Timeline(engine.TimelineParams{
		DateFrom: req.DateFrom, DateTo: req.DateTo, EventTypes: types, Limit: req.Limit,
	})
}

type traceCausalityRequest struct {
	EntryID   string `json:"entry_id"`
	Direction string `json:"direction"`
	Depth     int    `json:"depth"`
}

func handleTraceCausality(e *engine.Engine, params json.RawMessage) (any, error) {
	var req traceCausalityRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	dir := engine.Direction(req.Direction)
	if dir == "" {
		dir = engine.DirectionBackward
	}
	return e.TraceCausality(req.EntryID, dir, req.Depth)
}

type sessionHandoffRequest struct {
	DateFrom       string `json:"date_from"`
	DateTo         string `json:"date_to"`
	IncludeConfigs bool   `json:"include_configs"`
	IncludeLogs    bool   `json:"include_logs"`
	Format         string `json:"format"`
}

type sessionHandoffResponse struct {
	Result   *engine.HandoffResult `json:"result"`
	Rendered string                `json:"rendered"`
}

func handleSessionHandoff(e *engine.Engine, params json.RawMessage) (any, error) {
	var req sessionHandoffRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	format := req.Format
	if format == "" {
		format = "markdown"
	}
	result, rendered, err := e.SessionHandoff(engine.HandoffParams{
		DateFrom: req.DateFrom, DateTo: req.DateTo,
		IncludeConfigs: req.IncludeConfigs, IncludeLogs: req.IncludeLogs, Format: format,
	})
	if err != nil {
		return nil, err
	}
	return sessionHandoffResponse{Result: result, Rendered: rendered}, nil
}

type rebuildArtifactIndexRequest struct {
	Kind string `json:"kind"`
}

func handleRebuildArtifactIndex(e *engine.Engine, params json.RawMessage) (any, error) {
	var req rebuildArtifactIndexRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	kind, err := parseArtifactKind(req.Kind)
	if err != nil {
		return nil, err
	}
	if err := e.RebuildArtifactIndex(kind); err != nil {
		return nil, err
	}
	return map[string]string{"status": "ok"}, nil
}

func handleRebuildIndex(e *engine.Engine, _ json.RawMessage) (any, error) {
	result, err := e.RebuildIndex(nil)
	if err != nil {
		return result, err
	}
	return result, nil
}

func handleListTemplates(e *engine.Engine, _ json.RawMessage) (any, error) {
	return e.ListTemplates(), nil
}

type getTemplateRequest struct {
	Name string `json:"name"`
}

func handleGetTemplate(e *engine.Engine, params json.RawMessage) (any, error) {
	var req getTemplateRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	return e.GetTemplate(req.Name)
}

func handleHelp(e *engine.Engine, _ json.RawMessage) (any, error) {
	return engine.Help(), nil
}
