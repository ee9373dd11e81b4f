package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidEntryID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"well formed", "2026-01-17-001", true},
		{"four digit sequence", "2026-01-17-1000", true},
		{"missing sequence", "2026-01-17", false},
		{"short date", "26-01-17-001", false},
		{"two digit sequence", "2026-01-17-01", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEntryID(tt.id))
		})
	}
}

func TestEntryValidate(t *testing.T) {
	base := func() *Entry {
		return &Entry{ID: "2026-01-17-001", Author: "a", Kind: KindEntry, Timestamp: time.Now()}
	}

	t.Run("valid entry", func(t *testing.T) {
		e := base()
		assert.NoError(t, e.Validate())
	})

	t.Run("empty author rejected", func(t *testing.T) {
		e := base()
		e.Author = ""
		assert.Error(t, e.Validate())
	})

	t.Run("entry with amendment fields rejected", func(t *testing.T) {
		e := base()
		e.Correction = "x"
		assert.Error(t, e.Validate())
	})

	t.Run("entry with references_entry rejected", func(t *testing.T) {
		e := base()
		e.ReferencesEntry = "2026-01-17-000"
		assert.Error(t, e.Validate())
	})

	t.Run("valid amendment", func(t *testing.T) {
		e := base()
		e.Kind = KindAmendment
		e.ReferencesEntry = "2026-01-17-000"
		e.Correction, e.Actual, e.Impact = "c", "a", "i"
		assert.NoError(t, e.Validate())
	})

	t.Run("amendment missing references_entry rejected", func(t *testing.T) {
		e := base()
		e.Kind = KindAmendment
		e.Correction, e.Actual, e.Impact = "c", "a", "i"
		assert.Error(t, e.Validate())
	})

	t.Run("amendment missing triad field rejected", func(t *testing.T) {
		e := base()
		e.Kind = KindAmendment
		e.ReferencesEntry = "2026-01-17-000"
		e.Correction, e.Actual = "c", "a"
		assert.Error(t, e.Validate())
	})

	t.Run("invalid outcome rejected", func(t *testing.T) {
		e := base()
		e.Outcome = "maybe"
		assert.Error(t, e.Validate())
	})
}

func TestEntryDate(t *testing.T) {
	e := &Entry{ID: "2026-01-17-001"}
	assert.Equal(t, "2026-01-17", e.Date())
}
