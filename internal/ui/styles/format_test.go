package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/zjrosen/reqdesk/internal/catalog"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "default-req-001", 20, "default-req-001"},
		{"exact", "abcdef", 6, "abcdef"},
		{"truncated", "default-req-001", 10, "default..."},
		{"tiny", "abcdef", 2, ".."},
		{"zero", "abcdef", 0, ""},
		{"wide runes", "日本語のリクエスト", 9, "日本語..."},
		{"grapheme kept whole", "ok 👍🏽 done", 8, "ok 👍🏽..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.in, tt.width))
		})
	}
}

func TestFormatChars(t *testing.T) {
	assert.Equal(t, "0 chars", FormatChars(0))
	assert.Equal(t, "1 char", FormatChars(1))
	assert.Equal(t, "999 chars", FormatChars(999))
	assert.Equal(t, "1,204 chars", FormatChars(1204))
	assert.Equal(t, "1,000,000 chars", FormatChars(1000000))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, 8, lipgloss.Width(PadRight("processing-request", 8)))
}

func TestStatusBadge_ContainsStatus(t *testing.T) {
	for _, s := range catalog.Statuses {
		assert.Contains(t, StatusBadge(s), string(s))
		assert.NotNil(t, StatusColor(s))
	}
}
