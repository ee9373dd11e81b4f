package rpc

import (
	"encoding/json"

	"github.com/mesh-intelligence/journal/internal/engine"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

// appendRequest mirrors engine.AppendFields field-for-field over the wire.
type appendRequest struct {
	Author      string          `json:"author"`
	Template    string          `json:"template"`
	Context     string          `json:"context"`
	Intent      string          `json:"intent"`
	Action      string          `json:"action"`
	Observation string          `json:"observation"`
	Analysis    string          `json:"analysis"`
	NextSteps   string          `json:"next_steps"`
	Outcome     journal.Outcome `json:"outcome"`
	CausedBy    []string        `json:"caused_by"`
	References  []string        `json:"references"`
	ConfigUsed  string          `json:"config_used"`
	LogProduced string          `json:"log_produced"`
	Tool        string          `json:"tool"`
	Command     string          `json:"command"`
	DurationMs  *int64          `json:"duration_ms"`
	ExitCode    *int            `json:"exit_code"`
	ErrorType   string          `json:"error_type"`
}

func handleAppend(e *engine.Engine, params json.RawMessage) (any, error) {
	var req appendRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	return e.Append(engine.AppendFields{
		Author: req.Author, Template: req.Template,
		Context: req.Context, Intent: req.Intent, Action: req.Action,
		Observation: req.Observation, Analysis: req.Analysis, NextSteps: req.NextSteps,
		Outcome: req.Outcome, CausedBy: req.CausedBy, References: req.References,
		ConfigUsed: req.ConfigUsed, LogProduced: req.LogProduced,
		Tool: req.Tool, Command: req.Command,
		DurationMs: req.DurationMs, ExitCode: req.ExitCode, ErrorType: req.ErrorType,
	})
}

type amendRequest struct {
	ReferencesEntry string `json:"references_entry"`
	Correction      string `json:"correction"`
	Actual          string `json:"actual"`
	Impact          string `json:"impact"`
	Author          string `json:"author"`
}

func handleAmend(e *engine.Engine, params json.RawMessage) (any, error) {
	var req amendRequest
	if err := decode(params, &req); err != nil {
		return nil, err
	}
	return e.Amend(engine.AmendFields{
		ReferencesEntry: req.ReferencesEntry,
		Correction:      req.Correction,
		Actual:          req.Actual,
		Impact:          req.Impact,
		Author:          req.Author,
	})
}
