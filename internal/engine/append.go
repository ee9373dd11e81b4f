package engine

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/journal/internal/clock"
	"github.com/mesh-intelligence/journal/internal/codec"
	"github.com/mesh-intelligence/journal/internal/index"
	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/internal/lockfile"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

// AppendFields is the caller-supplied content for a new narrative entry.
type AppendFields struct {
	Author   string
	Template string

	Context    string
	Intent     string
	Action     string
	Observation string
	Analysis   string
	NextSteps  string

	Outcome journal.Outcome

	CausedBy   []string
	References []string
	ConfigUsed string
	LogProduced string

	Tool       string
	Command    string
	DurationMs *int64
	ExitCode   *int
	ErrorType  string
}

// AmendFields is the caller-supplied content for a correction to a prior
// entry.
type AmendFields struct {
	ReferencesEntry string
	Correction      string
	Actual          string
	Impact          string
	Author          string
}

// Append validates, persists, and indexes a new narrative entry, in the
// order: field/template/reference validation, daily-file lock, id
// allocation, pre-append hook, markdown encode + atomic write, index
// update, post-append hook.
func (e *Engine) Append(f AppendFields) (*journal.Entry, error) {
	if f.Author == "" {
		return nil, journalerr.New(journalerr.KindInvalidArgument, "author must not be empty")
	}

	if f.Template == "" && e.Config.Validation.RequireTemplates {
		return nil, journalerr.New(journalerr.KindTemplateRequired, "a template is required for this project")
	}

	var tmpl *journal.Template
	if f.Template != "" {
		var ok bool
		tmpl, ok = e.Templates[f.Template]
		if !ok {
			return nil, journalerr.New(journalerr.KindTemplateNotFound, fmt.Sprintf("unknown template %q", f.Template))
		}
		if missing := tmpl.CheckRequired(appendFieldMap(f)); missing != "" {
			return nil, journalerr.New(journalerr.KindMissingField, fmt.Sprintf("template %q requires field %q", f.Template, missing))
		}
		if f.Outcome == journal.OutcomeUnset {
			f.Outcome = tmpl.DefaultOutcome
		}
	}

	if e.Config.Validation.RequireOutcome && f.Outcome == journal.OutcomeUnset {
		return nil, journalerr.New(journalerr.KindInvalidArgument, "outcome is required for this project")
	}

	if e.Config.Validation.ValidateReferences {
		for _, id := range append(append([]string{}, f.CausedBy...), f.References...) {
			if got, _, err := e.Index.Get(id); err != nil {
				return nil, err
			} else if got == nil {
				return nil, journalerr.New(journalerr.KindInvalidReference, fmt.Sprintf("referenced entry %q not found", id))
			}
		}
	}

	entry := &journal.Entry{
		Kind:        journal.KindEntry,
		Author:      f.Author,
		Template:    f.Template,
		Context:     f.Context,
		Intent:      f.Intent,
		Action:      f.Action,
		Observation: f.Observation,
		Analysis:    f.Analysis,
		NextSteps:   f.NextSteps,
		Outcome:     f.Outcome,
		CausedBy:    f.CausedBy,
		References:  f.References,
		ConfigUsed:  f.ConfigUsed,
		LogProduced: f.LogProduced,
		Tool:        f.Tool,
		Command:     f.Command,
		DurationMs:  f.DurationMs,
		ExitCode:    f.ExitCode,
		ErrorType:   f.ErrorType,
	}
	return e.appendEntry(entry)
}

// Amend validates and persists a correction entry targeting a prior,
// already-indexed entry. Referential resolution of the target is
// mandatory regardless of the project's validate_references setting.
func (e *Engine) Amend(f AmendFields) (*journal.Entry, error) {
	if f.Author == "" {
		return nil, journalerr.New(journalerr.KindInvalidArgument, "author must not be empty")
	}
	if f.ReferencesEntry == "" {
		return nil, journalerr.New(journalerr.KindInvalidArgument, "references_entry is required")
	}
	target, _, err := e.Index.Get(f.ReferencesEntry)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, journalerr.New(journalerr.KindNotFound, fmt.Sprintf("amendment target %q not found", f.ReferencesEntry))
	}
	if f.Correction == "" || f.Actual == "" || f.Impact == "" {
		return nil, journalerr.New(journalerr.KindInvalidArgument, "amendment requires correction, actual, and impact")
	}

	entry := &journal.Entry{
		Kind:            journal.KindAmendment,
		Author:          f.Author,
		ReferencesEntry: f.ReferencesEntry,
		CausedBy:        []string{f.ReferencesEntry},
		Correction:      f.Correction,
		Actual:          f.Actual,
		Impact:          f.Impact,
	}
	return e.appendEntry(entry)
}

// appendEntry carries out the shared lock/id-allocate/hook/encode/index
// sequence for both Append and Amend.
func (e *Engine) appendEntry(entry *journal.Entry) (*journal.Entry, error) {
	now := e.Clock.Now()
	date := now.Format("2006-01-02")
	path := e.dailyFilePath(date)

	unlock, err := lockfile.ScopedLock(path, 0)
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := lockfile.ReadOrEmpty(path)
	if err != nil {
		return nil, err
	}

	prevMax, err := e.maxSequence(date, existing)
	if err != nil {
		return nil, err
	}

	entry.ID = clock.NextEntryID(date, prevMax)
	entry.Timestamp = now

	// hookToken correlates this append's PreAppend/PostAppend invocations in
	// the log even before entry.ID is durable (PreAppend may still reject).
	hookToken := uuid.NewString()

	if e.Hooks.PreAppend != nil {
		if err := e.Hooks.PreAppend(entry); err != nil {
			e.Logger.Debug().Str("hook_token", hookToken).Err(err).Msg("pre-append hook rejected entry")
			return nil, journalerr.Wrap(journalerr.KindIoFailure, "pre-append hook rejected entry", err)
		}
	}

	section := codec.Encode(entry)
	content := codec.AppendSection(existing, section)
	if err := lockfile.AtomicReplace(path, content); err != nil {
		return nil, err
	}

	if err := e.Index.IndexEntry(entry, path); err != nil {
		e.Logger.Error().Err(err).Str("entry_id", entry.ID).Msg("index update failed after durable write; run rebuild")
		return entry, err
	}

	if e.Hooks.PostAppend != nil {
		if err := e.Hooks.PostAppend(entry); err != nil {
			e.Logger.Warn().Str("hook_token", hookToken).Err(err).Str("entry_id", entry.ID).Msg("post-append hook failed")
		}
	}

	return entry, nil
}

// maxSequence computes the highest NNN seen for date across both the
// index and the in-flight daily file content, per §4.1's dual-source rule.
func (e *Engine) maxSequence(date string, fileContent []byte) (int, error) {
	max := 0
	for _, section := range codec.SplitSections(fileContent) {
		ent, err := codec.Decode(section)
		if err != nil {
			continue
		}
		if seq := sequenceOf(ent.ID); seq > max {
			max = seq
		}
	}

	result, err := e.Index.Query(index.QueryParams{
		DateFrom: date, DateTo: date,
		OrderBy: "entry_id", OrderDesc: true, Limit: 1000,
	})
	if err != nil {
		return 0, err
	}
	for _, ent := range result.Entries {
		if seq := sequenceOf(ent.ID); seq > max {
			max = seq
		}
	}
	return max, nil
}

func sequenceOf(id string) int {
	if len(id) < 12 {
		return 0
	}
	seq, err := strconv.Atoi(id[11:])
	if err != nil {
		return 0
	}
	return seq
}

// appendFieldMap projects AppendFields into the string-keyed map
// journal.Template.CheckRequired operates on.
func appendFieldMap(f AppendFields) map[string]string {
	m := map[string]string{
		"context": f.Context, "intent": f.Intent, "action": f.Action,
		"observation": f.Observation, "analysis": f.Analysis, "next_steps": f.NextSteps,
		"tool": f.Tool, "command": f.Command, "error_type": f.ErrorType,
	}
	if string(f.Outcome) != "" {
		m["outcome"] = string(f.Outcome)
	}
	if f.DurationMs != nil {
		m["duration_ms"] = strconv.FormatInt(*f.DurationMs, 10)
	}
	if f.ExitCode != nil {
		m["exit_code"] = strconv.Itoa(*f.ExitCode)
	}
	return m
}
