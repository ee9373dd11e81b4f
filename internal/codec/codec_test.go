package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/journal/pkg/journal"
)

func sampleEntry() *journal.Entry {
	return &journal.Entry{
		ID:        "2026-01-17-001",
		Timestamp: time.Date(2026, 1, 17, 10, 30, 0, 0, time.UTC),
		Author:    "a",
		Kind:      journal.KindEntry,
		Context:   "ran make",
		Outcome:   journal.OutcomeSuccess,
		Tool:      "make",
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	e := sampleEntry()
	section := Encode(e)

	got, err := Decode(section)
	require.NoError(t, err)

	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, e.Author, got.Author)
	assert.Equal(t, e.Context, got.Context)
	assert.Equal(t, e.Outcome, got.Outcome)
	assert.Equal(t, e.Tool, got.Tool)
	assert.True(t, e.Timestamp.Equal(got.Timestamp))
}

func TestEncodeAmendment(t *testing.T) {
	e := &journal.Entry{
		ID:              "2026-01-17-002",
		Timestamp:       time.Date(2026, 1, 17, 11, 0, 0, 0, time.UTC),
		Author:          "a",
		Kind:            journal.KindAmendment,
		ReferencesEntry: "2026-01-17-001",
		Correction:      "said 30s",
		Actual:          "was 45s",
		Impact:          "baseline off",
	}
	section := Encode(e)

	got, err := Decode(section)
	require.NoError(t, err)
	assert.Equal(t, journal.KindAmendment, got.Kind)
	assert.Equal(t, "2026-01-17-001", got.ReferencesEntry)
	assert.Equal(t, "said 30s", got.Correction)
	assert.Equal(t, "was 45s", got.Actual)
	assert.Equal(t, "baseline off", got.Impact)
}

func TestDecodeMissingHeaderFails(t *testing.T) {
	_, err := Decode([]byte("**Timestamp**: 2026-01-17T10:00:00.000000Z\n"))
	assert.Error(t, err)
}

func TestDecodeMissingAuthorFails(t *testing.T) {
	section := "## 2026-01-17-001\n**Timestamp**: 2026-01-17T10:00:00.000000Z\n"
	_, err := Decode([]byte(section))
	assert.Error(t, err)
}

func TestDecodeToleratesUnknownHeading(t *testing.T) {
	section := "## 2026-01-17-001\n**Timestamp**: 2026-01-17T10:00:00.000000Z\n**Author**: a\n\n### Args Summary\nsomething\n\n---\n"
	got, err := Decode([]byte(section))
	require.NoError(t, err)
	assert.Equal(t, "a", got.Author)
}

func TestSplitSections(t *testing.T) {
	content := []byte(string(Encode(sampleEntry())) + string(Encode(sampleEntry())))
	sections := SplitSections(content)
	assert.Len(t, sections, 2)
}

func TestSplitSectionsEmpty(t *testing.T) {
	assert.Empty(t, SplitSections(nil))
}

func TestAppendSectionToEmpty(t *testing.T) {
	section := Encode(sampleEntry())
	out := AppendSection(nil, section)
	assert.Equal(t, section, out)
}

func TestAppendSectionToExisting(t *testing.T) {
	first := Encode(sampleEntry())
	second := Encode(sampleEntry())
	out := AppendSection(first, second)
	sections := SplitSections(out)
	assert.Len(t, sections, 2)
}

func TestCausedByRoundTrip(t *testing.T) {
	e := sampleEntry()
	e.CausedBy = []string{"2026-01-17-000", "2026-01-16-005"}
	e.References = []string{"README.md"}

	got, err := Decode(Encode(e))
	require.NoError(t, err)
	assert.Equal(t, e.CausedBy, got.CausedBy)
	assert.Equal(t, e.References, got.References)
}
