// Package codec serializes journal entries to the stable markdown section
// format daily files are made of, and parses them back.
package codec

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

const sectionTerminator = "---"

const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Encode serializes a single entry into its markdown section, including
// the leading "## {id}" header and the trailing terminator line.
func Encode(e *journal.Entry) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n", e.ID)
	fmt.Fprintf(&b, "**Timestamp**: %s\n", e.Timestamp.UTC().Format(timestampLayout))
	fmt.Fprintf(&b, "**Author**: %s\n", e.Author)
	if e.Kind == journal.KindAmendment {
		fmt.Fprintf(&b, "**Type**: %s\n", e.Kind)
	}
	if e.Template != "" {
		fmt.Fprintf(&b, "**Template**: %s\n", e.Template)
	}
	if e.Outcome != journal.OutcomeUnset {
		fmt.Fprintf(&b, "**Outcome**: %s\n", e.Outcome)
	}
	if len(e.CausedBy) > 0 {
		fmt.Fprintf(&b, "**Caused-By**: %s\n", strings.Join(e.CausedBy, ", "))
	}
	if len(e.References) > 0 {
		fmt.Fprintf(&b, "**References**: %s\n", strings.Join(e.References, ", "))
	}
	if e.ReferencesEntry != "" {
		fmt.Fprintf(&b, "**References-Entry**: %s\n", e.ReferencesEntry)
	}
	if e.ConfigUsed != "" {
		fmt.Fprintf(&b, "**Config**: %s\n", e.ConfigUsed)
	}
	if e.LogProduced != "" {
		fmt.Fprintf(&b, "**Log**: %s\n", e.LogProduced)
	}
	b.WriteString("\n")

	if e.Kind == journal.KindEntry {
		writeBlock(&b, "Context", e.Context)
		writeBlock(&b, "Intent", e.Intent)
		writeBlock(&b, "Action", e.Action)
		writeBlock(&b, "Observation", e.Observation)
		writeBlock(&b, "Analysis", e.Analysis)
		writeBlock(&b, "Next Steps", e.NextSteps)
	} else {
		writeBlock(&b, "Correction", e.Correction)
		writeBlock(&b, "Actual", e.Actual)
		writeBlock(&b, "Impact", e.Impact)
	}
	writeBlock(&b, "Tool", e.Tool)
	writeBlock(&b, "Command", e.Command)
	if e.DurationMs != nil {
		writeBlock(&b, "Duration (ms)", strconv.FormatInt(*e.DurationMs, 10))
	}
	if e.ExitCode != nil {
		writeBlock(&b, "Exit Code", strconv.Itoa(*e.ExitCode))
	}
	writeBlock(&b, "Error Type", e.ErrorType)

	b.WriteString(sectionTerminator + "\n")
	return []byte(b.String())
}

func writeBlock(b *strings.Builder, heading, body string) {
	if body == "" {
		return
	}
	fmt.Fprintf(b, "### %s\n%s\n\n", heading, body)
}

// SplitSections splits the content of a daily file into the byte ranges of
// each "## {id}" ... "---" section, in on-disk order.
func SplitSections(content []byte) [][]byte {
	lines := strings.Split(string(content), "\n")
	var sections [][]byte
	var current []string
	inSection := false

	flush := func() {
		if inSection && len(current) > 0 {
			sections = append(sections, []byte(strings.Join(current, "\n")))
		}
		current = nil
		inSection = false
	}

	for _, line := range lines {
		if strings.HasPrefix(line, "## ") {
			flush()
			inSection = true
			current = append(current, line)
			continue
		}
		if inSection && strings.TrimSpace(line) == sectionTerminator {
			current = append(current, line)
			flush()
			continue
		}
		if inSection {
			current = append(current, line)
		}
	}
	flush()
	return sections
}

var headingLabels = map[string]string{
	"Context": "context", "Intent": "intent", "Action": "action",
	"Observation": "observation", "Analysis": "analysis", "Next Steps": "next_steps",
	"Correction": "correction", "Actual": "actual", "Impact": "impact",
	"Tool": "tool", "Command": "command", "Duration (ms)": "duration_ms",
	"Exit Code": "exit_code", "Error Type": "error_type",
}

// Decode parses a single markdown section back into an Entry. It tolerates
// metadata fields in any order and unknown headings, failing only when the
// header, timestamp, or author is missing or malformed.
func Decode(section []byte) (*journal.Entry, error) {
	lines := strings.Split(string(section), "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "## ") {
		return nil, journalerr.New(journalerr.KindCodecError, "missing entry header")
	}
	e := &journal.Entry{
		ID:   strings.TrimSpace(strings.TrimPrefix(lines[0], "## ")),
		Kind: journal.KindEntry,
	}

	blocks := map[string]string{}
	var currentHeading string
	var currentBody []string
	haveTimestamp, haveAuthor := false, false

	flushBlock := func() {
		if currentHeading != "" {
			blocks[currentHeading] = strings.TrimRight(strings.Join(currentBody, "\n"), "\n")
		}
		currentHeading = ""
		currentBody = nil
	}

	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == sectionTerminator {
			continue
		}
		if strings.HasPrefix(line, "### ") {
			flushBlock()
			currentHeading = strings.TrimSpace(strings.TrimPrefix(line, "### "))
			continue
		}
		if currentHeading != "" {
			currentBody = append(currentBody, line)
			continue
		}
		if strings.HasPrefix(trimmed, "**") {
			if err := parseMetaLine(trimmed, e, &haveTimestamp, &haveAuthor); err != nil {
				return nil, err
			}
		}
	}
	flushBlock()

	if !haveTimestamp {
		return nil, journalerr.New(journalerr.KindCodecError, "missing timestamp")
	}
	if !haveAuthor {
		return nil, journalerr.New(journalerr.KindCodecError, "missing author")
	}

	for heading, field := range headingLabels {
		body, ok := blocks[heading]
		if !ok {
			continue
		}
		assignBody(e, field, body)
	}

	return e, nil
}

func parseMetaLine(line string, e *journal.Entry, haveTimestamp, haveAuthor *bool) error {
	rest := strings.TrimPrefix(line, "**")
	idx := strings.Index(rest, "**:")
	if idx < 0 {
		return nil
	}
	label := rest[:idx]
	value := strings.TrimSpace(rest[idx+len("**:"):])

	switch label {
	case "Timestamp":
		ts, err := time.Parse(timestampLayout, value)
		if err != nil {
			if ts2, err2 := time.Parse(time.RFC3339, value); err2 == nil {
				ts = ts2
			} else {
				return journalerr.Wrap(journalerr.KindCodecError, "invalid timestamp", err)
			}
		}
		e.Timestamp = ts
		*haveTimestamp = true
	case "Author":
		if value == "" {
			return journalerr.New(journalerr.KindCodecError, "empty author")
		}
		e.Author = value
		*haveAuthor = true
	case "Type":
		e.Kind = journal.EntryKind(value)
	case "Template":
		e.Template = value
	case "Outcome":
		e.Outcome = journal.Outcome(value)
	case "Caused-By":
		e.CausedBy = splitIDList(value)
	case "References":
		e.References = splitIDList(value)
	case "References-Entry":
		e.ReferencesEntry = value
	case "Config":
		e.ConfigUsed = value
	case "Log":
		e.LogProduced = value
	}
	return nil
}

func splitIDList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func assignBody(e *journal.Entry, field, body string) {
	switch field {
	case "context":
		e.Context = body
	case "intent":
		e.Intent = body
	case "action":
		e.Action = body
	case "observation":
		e.Observation = body
	case "analysis":
		e.Analysis = body
	case "next_steps":
		e.NextSteps = body
	case "correction":
		e.Correction = body
	case "actual":
		e.Actual = body
	case "impact":
		e.Impact = body
	case "tool":
		e.Tool = body
	case "command":
		e.Command = body
	case "error_type":
		e.ErrorType = body
	case "duration_ms":
		if v, err := strconv.ParseInt(body, 10, 64); err == nil {
			e.DurationMs = &v
		}
	case "exit_code":
		if v, err := strconv.Atoi(body); err == nil {
			e.ExitCode = &v
		}
	}
}

// AppendSection appends a newly-encoded section to the existing daily-file
// content, the read-modify-atomic_replace pattern §4.2 describes.
func AppendSection(existing []byte, section []byte) []byte {
	if len(existing) == 0 {
		return section
	}
	if !strings.HasSuffix(string(existing), "\n") {
		existing = append(existing, '\n')
	}
	return append(append([]byte{}, existing...), section...)
}
