// Package styles contains Lip Gloss style definitions.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/reqdesk/internal/catalog"
)

var (
	// Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#CCCCCC"}
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#57606A", Dark: "#BBBBBB"}
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#696969"}

	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#D0D7DE", Dark: "#696969"}
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#BF8700", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#FF8787"}
	StatusInfoColor    = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"}

	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#FFFFFF"}
	SelectedRowBgColor      = lipgloss.AdaptiveColor{Light: "#DDF4FF", Dark: "#1A3A5C"}

	ToastBorderSuccessColor = StatusSuccessColor
	ToastBorderErrorColor   = StatusErrorColor
	ToastBorderInfoColor    = StatusInfoColor
	ToastBorderWarnColor    = StatusWarningColor

	// Request status colors
	StatusPendingColor    = lipgloss.AdaptiveColor{Light: "#BF8700", Dark: "#FECA57"}
	StatusProcessingColor = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"}
	StatusCompletedColor  = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusFailedColor     = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#FF8787"}

	// Chat roles
	RoleUserColor   = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"}
	RoleAgentColor  = lipgloss.AdaptiveColor{Light: "#8250DF", Dark: "#CBA6F7"}
	RoleSystemColor = TextMutedColor

	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)
	SelectedRowStyle        = lipgloss.NewStyle().Background(SelectedRowBgColor).Bold(true)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)

	badgeStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E1E"})
)

// StatusColor returns the color used for a request status.
func StatusColor(s catalog.Status) lipgloss.TerminalColor {
	switch s {
	case catalog.StatusPending:
		return StatusPendingColor
	case catalog.StatusProcessing:
		return StatusProcessingColor
	case catalog.StatusCompleted:
		return StatusCompletedColor
	case catalog.StatusFailed:
		return StatusFailedColor
	default:
		return TextMutedColor
	}
}

// StatusBadge renders a status as a coloured pill.
func StatusBadge(s catalog.Status) string {
	return badgeStyle.Background(StatusColor(s)).Render(string(s))
}

// Badge renders an arbitrary label as a pill in the given color.
func Badge(label string, c lipgloss.TerminalColor) string {
	return badgeStyle.Background(c).Render(label)
}
