package panes

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestBorderedPane_Dimensions(t *testing.T) {
	out := BorderedPane(BorderConfig{Content: "hello", Width: 20, Height: 5})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		require.Equal(t, 20, lipgloss.Width(l))
	}
}

func TestBorderedPane_Titles(t *testing.T) {
	out := plain(BorderedPane(BorderConfig{
		Content:     "body",
		Width:       30,
		Height:      4,
		TopLeft:     "Requests",
		TopRight:    "25",
		BottomLeft:  "Page 1 of 3",
		BottomRight: "j/k",
	}))
	lines := strings.Split(out, "\n")
	require.Equal(t, "╭─ Requests "+strings.Repeat("─", 12)+" 25 ─╮", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "│body"))
	require.Equal(t, "╰─ Page 1 of 3 "+strings.Repeat("─", 8)+" j/k ─╯", lines[3])
}

func TestBorderedPane_NarrowDropsRightTitle(t *testing.T) {
	out := plain(BorderedPane(BorderConfig{Width: 14, Height: 3, TopLeft: "Preview", TopRight: "MARKDOWN"}))
	top := strings.Split(out, "\n")[0]
	require.Contains(t, top, "Preview")
	require.NotContains(t, top, "MARKDOWN")
	require.Equal(t, 14, lipgloss.Width(top))
}

func TestBorderedPane_TruncatesLongLeftTitle(t *testing.T) {
	out := plain(BorderedPane(BorderConfig{Width: 12, Height: 3, TopLeft: "final_output.md"}))
	top := strings.Split(out, "\n")[0]
	require.Contains(t, top, "...")
	require.Equal(t, 12, lipgloss.Width(top))
}

func TestBorderedPane_ClipsTallContent(t *testing.T) {
	out := BorderedPane(BorderConfig{Content: "a\nb\nc\nd", Width: 10, Height: 4})
	require.Len(t, strings.Split(out, "\n"), 4)
}

func TestScrollablePane_BottomAlignedPadsAndFollows(t *testing.T) {
	vp := viewport.New(0, 0)
	out := plain(ScrollablePane(20, 6, ScrollableConfig{Viewport: &vp, BottomAligned: true}, func(int) string {
		return "last line"
	}))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	require.Contains(t, lines[4], "last line")

	long := strings.Repeat("line\n", 20) + "tail"
	out = plain(ScrollablePane(20, 6, ScrollableConfig{Viewport: &vp, BottomAligned: true}, func(int) string {
		return long
	}))
	require.Contains(t, out, "tail")
	require.True(t, vp.AtBottom())
}

func TestScrollablePane_TopAlignedIndicator(t *testing.T) {
	vp := viewport.New(0, 0)
	long := strings.Repeat("row\n", 30)
	render := func() string {
		return plain(ScrollablePane(20, 6, ScrollableConfig{Viewport: &vp, ShowScrollIndicator: true}, func(int) string {
			return long
		}))
	}
	require.NotContains(t, render(), "%")

	vp.SetYOffset(5)
	require.Contains(t, render(), "↓")
}

func TestScrollablePane_WrapWidth(t *testing.T) {
	vp := viewport.New(0, 0)
	var got int
	ScrollablePane(42, 10, ScrollableConfig{Viewport: &vp}, func(w int) string {
		got = w
		return ""
	})
	require.Equal(t, 40, got)
}
