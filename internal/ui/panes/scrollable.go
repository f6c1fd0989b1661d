package panes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/reqdesk/internal/ui/styles"
)

// ScrollIndicatorStyle renders the "↑42%" hint.
var ScrollIndicatorStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)

// ScrollableConfig describes a bordered pane backed by a viewport.
type ScrollableConfig struct {
	// Viewport must be a pointer so scroll position survives re-renders.
	Viewport *viewport.Model

	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string

	Focused            bool
	TitleColor         lipgloss.TerminalColor
	BorderColor        lipgloss.TerminalColor
	FocusedBorderColor lipgloss.TerminalColor

	// BottomAligned pads short content from the top and follows new
	// content while the viewport is at the bottom, like a chat log.
	BottomAligned bool
	// ShowScrollIndicator puts the scroll position in the bottom-right
	// title when BottomRight is empty.
	ShowScrollIndicator bool
}

// ScrollablePane sizes cfg.Viewport to the pane interior, fills it with
// content(wrapWidth) and renders it inside a border.
func ScrollablePane(width, height int, cfg ScrollableConfig, content func(wrapWidth int) string) string {
	vpWidth := max(width-2, 1)
	vpHeight := max(height-2, 1)

	body := content(vpWidth)
	if cfg.BottomAligned {
		if n := strings.Count(body, "\n") + 1; n < vpHeight {
			body = strings.Repeat("\n", vpHeight-n) + body
		}
	}

	// Must be read before SetContent or the user's scroll position is lost.
	follow := cfg.BottomAligned && cfg.Viewport.AtBottom()

	cfg.Viewport.Width = vpWidth
	cfg.Viewport.Height = vpHeight
	cfg.Viewport.SetContent(body)
	if follow {
		cfg.Viewport.GotoBottom()
	}

	bottomRight := cfg.BottomRight
	if bottomRight == "" && cfg.ShowScrollIndicator {
		bottomRight = ScrollIndicator(*cfg.Viewport, cfg.BottomAligned)
	}

	return BorderedPane(BorderConfig{
		Content:            cfg.Viewport.View(),
		Width:              width,
		Height:             height,
		TopLeft:            cfg.TopLeft,
		TopRight:           cfg.TopRight,
		BottomLeft:         cfg.BottomLeft,
		BottomRight:        bottomRight,
		Focused:            cfg.Focused,
		TitleColor:         cfg.TitleColor,
		BorderColor:        cfg.BorderColor,
		FocusedBorderColor: cfg.FocusedBorderColor,
	})
}

// ScrollIndicator reports how far the viewport is from its resting edge:
// the bottom for chat-like panes, the top otherwise. It is empty at rest.
func ScrollIndicator(vp viewport.Model, bottomAligned bool) string {
	if vp.TotalLineCount() <= vp.Height {
		return ""
	}
	pct := int(vp.ScrollPercent() * 100)
	if bottomAligned {
		if vp.AtBottom() {
			return ""
		}
		return ScrollIndicatorStyle.Render(fmt.Sprintf("↑%d%%", pct))
	}
	if vp.AtTop() {
		return ""
	}
	return ScrollIndicatorStyle.Render(fmt.Sprintf("↓%d%%", pct))
}
