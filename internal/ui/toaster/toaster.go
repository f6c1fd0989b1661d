// Package toaster renders short-lived notifications over the bottom of the screen.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/reqdesk/internal/ui/overlay"
	"github.com/zjrosen/reqdesk/internal/ui/styles"
)

// Style selects the toast's border color and icon.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

// DefaultDuration is how long Flash keeps a toast on screen.
const DefaultDuration = 3 * time.Second

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	// seq identifies the current toast so an older dismissal cannot hide a newer one.
	seq int
}

// New creates a hidden toaster.
func New() Model {
	return Model{}
}

// Show displays message until Hide is called.
func (m Model) Show(message string, style Style) Model {
	m.message = message
	m.style = style
	m.visible = true
	m.seq++
	return m
}

// Flash shows message and schedules its dismissal after d.
func (m Model) Flash(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	m = m.Show(message, style)
	seq := m.seq
	return m, tea.Tick(d, func(time.Time) tea.Msg { return DismissMsg{seq: seq} })
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Update handles DismissMsg. Dismissals for replaced toasts are ignored.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && (d.seq == 0 || d.seq == m.seq) {
		return m.Hide()
	}
	return m
}

// Visible reports whether a toast is showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the current toast text.
func (m Model) Message() string {
	return m.message
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	var icon string
	switch m.style {
	case StyleError:
		style, icon = style.BorderForeground(styles.ToastBorderErrorColor), "❌ "
	case StyleInfo:
		style, icon = style.BorderForeground(styles.ToastBorderInfoColor), "ℹ️ "
	case StyleWarn:
		style, icon = style.BorderForeground(styles.ToastBorderWarnColor), "⚠️ "
	default:
		style, icon = style.BorderForeground(styles.ToastBorderSuccessColor), "✅ "
	}
	return style.Render(icon + m.message)
}

// Overlay draws the toast bottom-centre over bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     1,
	}, m.View(), bg)
}

// DismissMsg hides the toast it was scheduled for. The zero value hides any toast.
type DismissMsg struct {
	seq int
}

// ScheduleDismiss returns a command that hides whichever toast is showing after d.
func ScheduleDismiss(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return DismissMsg{} })
}
