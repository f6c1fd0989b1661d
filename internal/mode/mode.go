// Package mode defines the mode controller interface and the services
// shared by mode controllers.
package mode

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/reqdesk/internal/catalog"
	"github.com/zjrosen/reqdesk/internal/config"
	"github.com/zjrosen/reqdesk/internal/preview"
	"github.com/zjrosen/reqdesk/internal/session"
	"github.com/zjrosen/reqdesk/internal/ui/toaster"
)

// Controller is implemented by every mode.
type Controller interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Controller, tea.Cmd)
	View() string
	SetSize(width, height int) Controller
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock returns the wall-clock time.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// Services contains shared dependencies injected into mode controllers.
type Services struct {
	Orchestrator *session.Orchestrator
	Catalog      catalog.Source
	Exporter     *preview.Exporter
	Clipboard    preview.Clipboard
	Config       *config.Config
	ConfigPath   string
	Clock        Clock
}

// ShowToastMsg asks the app to display a toast.
type ShowToastMsg struct {
	Message string
	Style   toaster.Style
}

// Toast returns a command emitting ShowToastMsg.
func Toast(message string, style toaster.Style) tea.Cmd {
	return func() tea.Msg { return ShowToastMsg{Message: message, Style: style} }
}
