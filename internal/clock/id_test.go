package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextEntryID(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		prevMax int
		want    string
	}{
		{"first of day", "2026-01-17", 0, "2026-01-17-001"},
		{"second of day", "2026-01-17", 1, "2026-01-17-002"},
		{"rolls past 999", "2026-01-17", 999, "2026-01-17-1000"},
		{"beyond 1000", "2026-01-17", 1000, "2026-01-17-1001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextEntryID(tt.date, tt.prevMax))
		})
	}
}
