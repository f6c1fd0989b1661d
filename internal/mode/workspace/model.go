// Package workspace implements the three-pane request workspace: the
// namespace selector and request list on the left, the chat in the centre
// and the output preview on the right.
package workspace

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/reqdesk/internal/catalog"
	"github.com/zjrosen/reqdesk/internal/config"
	"github.com/zjrosen/reqdesk/internal/log"
	"github.com/zjrosen/reqdesk/internal/mode"
	"github.com/zjrosen/reqdesk/internal/namespace"
	"github.com/zjrosen/reqdesk/internal/preview"
	"github.com/zjrosen/reqdesk/internal/session"
	"github.com/zjrosen/reqdesk/internal/workflow"
)

const (
	sidebarWidth = 40
	minCenter    = 30
	minRight     = 28
	loadTimeout  = 5 * time.Second
)

// focusArea identifies the pane receiving keyboard input.
type focusArea int

const (
	focusRequests focusArea = iota
	focusChat
	focusPreview
)

// RecordsLoadedMsg carries the result of a catalog load.
type RecordsLoadedMsg struct {
	Namespace string
	Records   []catalog.Record
	Err       error
}

// ReloadMsg asks the workspace to reload the current namespace.
type ReloadMsg struct{}

// Model is the workspace mode.
type Model struct {
	services  mode.Services
	orch      *session.Orchestrator
	registry  *namespace.Registry
	source    catalog.Source
	exporter  *preview.Exporter
	clipboard preview.Clipboard
	clock     mode.Clock
	engine    *workflow.Engine

	list    requestList
	chat    chatPane
	preview previewPane
	help    help.Model
	focus   focusArea

	compactWidth int
	width        int
	height       int

	// loadingNS is the namespace whose load is in flight.
	loadingNS string
}

// New builds the workspace from services. Orchestrator and Catalog are required.
func New(services mode.Services) Model {
	cfg := config.Defaults()
	if services.Config != nil {
		cfg = *services.Config
	}
	clock := services.Clock
	if clock == nil {
		clock = mode.RealClock{}
	}
	clipboard := services.Clipboard
	if clipboard == nil {
		clipboard = preview.SystemClipboard{}
	}
	exporter := services.Exporter
	if exporter == nil {
		exporter = preview.NewOSExporter(cfg.Export.Dir)
	}

	engine := workflow.New(cfg.Workflow.StepDelay)
	engine.SetClock(clock)

	m := Model{
		services:     services,
		orch:         services.Orchestrator,
		registry:     services.Orchestrator.Registry(),
		source:       services.Catalog,
		exporter:     exporter,
		clipboard:    clipboard,
		clock:        clock,
		engine:       engine,
		list:         newRequestList(cfg.Catalog.PageSize),
		chat:         newChatPane(),
		preview:      newPreviewPane(cfg.UI.MarkdownStyle),
		help:         help.New(),
		focus:        focusRequests,
		compactWidth: cfg.UI.CompactWidth,
		loadingNS:    services.Orchestrator.State().NamespaceID,
	}
	if !m.state().Panels.SidebarOpen {
		m.focus = focusChat
		m.chat.input.Focus()
	}
	return m
}

// Init loads the initial namespace.
func (m Model) Init() tea.Cmd {
	return m.loadRecords(m.loadingNS)
}

// SetSize records the terminal size.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	m.help.Width = width
	return m
}

func (m Model) state() session.State {
	return m.orch.State()
}

// Engine exposes the workflow engine, mainly for tests and the app.
func (m Model) Engine() *workflow.Engine {
	return m.engine
}

func (m Model) compact() bool {
	return m.width < m.compactWidth
}

func (m Model) loadRecords(ns string) tea.Cmd {
	src := m.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		records, err := src.List(ctx, ns)
		return RecordsLoadedMsg{Namespace: ns, Records: records, Err: err}
	}
}

// syncNamespace starts a load when the session moved to a namespace the list
// is not showing and no load for it is in flight.
func (m Model) syncNamespace() (Model, tea.Cmd) {
	ns := m.state().NamespaceID
	if ns == m.list.namespace && m.list.loaded || ns == m.loadingNS {
		return m, nil
	}
	m.loadingNS = ns
	m.list = m.list.Loading(ns)
	log.Debug(log.CatCatalog, "loading namespace", "namespace", ns)
	return m, m.loadRecords(ns)
}

// layout splits the width between the panes. In compact mode the sidebar
// takes no column; it is drawn over the chat instead.
func (m Model) layout() (sidebar, center, right int) {
	st := m.state()
	if st.Panels.SidebarOpen && !m.compact() {
		sidebar = min(sidebarWidth, m.width/3)
	}
	if st.Panels.RightPaneVisible {
		right = max(m.width*2/5, minRight)
	}
	center = m.width - sidebar - right
	if center < minCenter && right > 0 {
		right = max(m.width-sidebar-minCenter, 0)
		if right < minRight {
			right = 0
		}
		center = m.width - sidebar - right
	}
	return sidebar, max(center, 1), right
}

// focusOrder lists the panes that can currently take focus.
func (m Model) focusOrder() []focusArea {
	st := m.state()
	order := make([]focusArea, 0, 3)
	if st.Panels.SidebarOpen {
		order = append(order, focusRequests)
	}
	order = append(order, focusChat)
	if _, _, right := m.layout(); right > 0 {
		order = append(order, focusPreview)
	}
	return order
}

func (m Model) setFocus(f focusArea) Model {
	m.focus = f
	if f == focusChat {
		m.chat.input.Focus()
	} else {
		m.chat.input.Blur()
	}
	return m
}

func (m Model) cycleFocus(delta int) Model {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	return m.setFocus(order[idx])
}

// fixFocus moves focus off a pane that was just hidden.
func (m Model) fixFocus() Model {
	for _, f := range m.focusOrder() {
		if f == m.focus {
			return m
		}
	}
	return m.setFocus(focusChat)
}
