package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// TruncateString truncates s to fit within maxWidth, adding an ellipsis if needed.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	// Step by grapheme cluster so combined emoji and accents are never split.
	var b strings.Builder
	width := 0
	state := -1
	for rest := s; rest != ""; {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		w := uniseg.StringWidth(cluster)
		if width+w > maxWidth-3 {
			break
		}
		b.WriteString(cluster)
		width += w
	}
	return b.String() + "..."
}

// FormatChars renders a character count such as "1,204 chars".
func FormatChars(n int) string {
	if n == 1 {
		return "1 char"
	}
	s := fmt.Sprintf("%d", n)
	var out []byte
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out) + " chars"
}

// PadRight pads s with spaces to width, truncating when it is wider.
func PadRight(s string, width int) string {
	s = TruncateString(s, width)
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
