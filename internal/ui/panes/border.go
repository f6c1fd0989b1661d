// Package panes renders bordered, optionally scrollable panes with titles
// embedded in the border.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/reqdesk/internal/ui/styles"
)

const (
	cornerTopLeft     = "╭"
	cornerTopRight    = "╮"
	cornerBottomLeft  = "╰"
	cornerBottomRight = "╯"
	horizontal        = "─"
	vertical          = "│"
)

// BorderConfig describes a bordered pane. Width and Height include the border.
type BorderConfig struct {
	Content string
	Width   int
	Height  int

	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string

	Focused bool
	// Nil colors fall back to styles.BorderDefaultColor. A nil
	// FocusedBorderColor inherits BorderColor.
	TitleColor         lipgloss.TerminalColor
	BorderColor        lipgloss.TerminalColor
	FocusedBorderColor lipgloss.TerminalColor
}

// BorderedPane renders cfg.Content inside a rounded border.
func BorderedPane(cfg BorderConfig) string {
	borderStyle := lipgloss.NewStyle().Foreground(borderColor(cfg))
	titleColor := cfg.TitleColor
	if titleColor == nil {
		titleColor = styles.BorderDefaultColor
	}
	titleStyle := lipgloss.NewStyle().Foreground(titleColor)

	inner := max(cfg.Width-2, 1)
	rows := max(cfg.Height-2, 1)

	body := lipgloss.NewStyle().Width(inner).Height(rows).MaxHeight(rows).Render(cfg.Content)
	lines := strings.Split(body, "\n")

	var b strings.Builder
	b.WriteString(edge(cornerTopLeft, cornerTopRight, cfg.TopLeft, cfg.TopRight, inner, borderStyle, titleStyle))
	side := borderStyle.Render(vertical)
	for i := range rows {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if w := lipgloss.Width(line); w < inner {
			line += strings.Repeat(" ", inner-w)
		}
		b.WriteString("\n" + side + line + side)
	}
	b.WriteString("\n")
	b.WriteString(edge(cornerBottomLeft, cornerBottomRight, cfg.BottomLeft, cfg.BottomRight, inner, borderStyle, titleStyle))
	return b.String()
}

func borderColor(cfg BorderConfig) lipgloss.TerminalColor {
	switch {
	case cfg.Focused && cfg.FocusedBorderColor != nil:
		return cfg.FocusedBorderColor
	case cfg.BorderColor != nil:
		return cfg.BorderColor
	default:
		return styles.BorderDefaultColor
	}
}

// edge builds one horizontal border line: ╭─ Left ──── Right ─╮.
// The right title is dropped first when space runs out, then the left one
// is truncated.
func edge(leftCorner, rightCorner, left, right string, inner int, bs, ts lipgloss.Style) string {
	plain := func() string {
		return bs.Render(leftCorner + strings.Repeat(horizontal, inner) + rightCorner)
	}
	if left == "" && right == "" || inner < 4 {
		return plain()
	}

	lw, rw := lipgloss.Width(left), lipgloss.Width(right)
	if right != "" && lw+rw+6 > inner {
		right, rw = "", 0
	}
	if left != "" && lw+3 > inner {
		left = styles.TruncateString(left, inner-4)
		lw = lipgloss.Width(left)
	}
	if left == "" && right == "" {
		return plain()
	}

	var b strings.Builder
	b.WriteString(bs.Render(leftCorner))
	used := 0
	if left != "" {
		b.WriteString(bs.Render(horizontal+" ") + ts.Render(left) + bs.Render(" "))
		used += lw + 3
	}
	if right != "" {
		used += rw + 3
	}
	b.WriteString(bs.Render(strings.Repeat(horizontal, max(inner-used, 0))))
	if right != "" {
		b.WriteString(bs.Render(" ") + ts.Render(right) + bs.Render(" "+horizontal))
	}
	b.WriteString(bs.Render(rightCorner))
	return b.String()
}
