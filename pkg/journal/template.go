package journal

import "fmt"

// Template describes the required and optional fields for a named entry
// shape. The field set is static for the lifetime of a process.
type Template struct {
	Name            string
	Description     string
	RequiredFields  []string
	OptionalFields  []string
	DefaultOutcome  Outcome
}

// entryFieldSet is the set of narrative/diagnostic field names a template
// may reference, mirrored from the Entry struct's body blocks.
var entryFieldSet = map[string]bool{
	"context": true, "intent": true, "action": true, "observation": true,
	"analysis": true, "next_steps": true, "tool": true, "command": true,
	"duration_ms": true, "exit_code": true, "error_type": true,
}

// CheckRequired reports the first required field name from t that is empty
// in the given field-value map, or "" if all required fields are present.
func (t *Template) CheckRequired(fields map[string]string) string {
	for _, f := range t.RequiredFields {
		if fields[f] == "" {
			return f
		}
	}
	return ""
}

// DefaultTemplates returns the built-in templates available in every
// project: diagnostic, build, test. Project configuration may add to or
// override these by name.
func DefaultTemplates() map[string]*Template {
	return map[string]*Template{
		"diagnostic": {
			Name:           "diagnostic",
			Description:    "Investigating unexpected behavior or an error.",
			RequiredFields: []string{"context", "observation", "analysis"},
			OptionalFields: []string{"intent", "action", "next_steps", "tool", "command"},
		},
		"build": {
			Name:           "build",
			Description:    "A build or compilation action.",
			RequiredFields: []string{"action", "observation"},
			OptionalFields: []string{"context", "intent", "analysis", "next_steps", "tool", "command", "duration_ms", "exit_code"},
			DefaultOutcome: OutcomeSuccess,
		},
		"test": {
			Name:           "test",
			Description:    "Running a test suite or individual test.",
			RequiredFields: []string{"action", "observation", "outcome"},
			OptionalFields: []string{"context", "intent", "analysis", "next_steps", "tool", "command", "duration_ms", "exit_code"},
		},
	}
}

// ValidateFieldNames reports an error if any field in RequiredFields or
// OptionalFields is not a recognized entry field.
func (t *Template) ValidateFieldNames() error {
	for _, f := range append(append([]string{}, t.RequiredFields...), t.OptionalFields...) {
		if f == "outcome" {
			continue
		}
		if !entryFieldSet[f] {
			return fmt.Errorf("template %s: unknown field %q", t.Name, f)
		}
	}
	return nil
}
