// Package app contains the root application model.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/reqdesk/internal/log"
	"github.com/zjrosen/reqdesk/internal/mode"
	"github.com/zjrosen/reqdesk/internal/mode/workspace"
	"github.com/zjrosen/reqdesk/internal/pubsub"
	"github.com/zjrosen/reqdesk/internal/session"
	"github.com/zjrosen/reqdesk/internal/ui/toaster"
	"github.com/zjrosen/reqdesk/internal/watcher"
)

// invalidator is implemented by catalog sources that cache records.
type invalidator interface {
	Invalidate(ctx context.Context) error
}

// Model is the root application state.
type Model struct {
	workspace mode.Controller
	services  mode.Services

	width  int
	height int

	// Centralized toaster, owned by app rather than the workspace
	toaster toaster.Model

	ctx    context.Context
	cancel context.CancelFunc

	// Session snapshots
	stateListener *pubsub.ContinuousListener[session.State]

	// File watcher for auto-refresh of the sqlite catalog
	watcherHandle   *watcher.Watcher
	watcherListener *pubsub.ContinuousListener[watcher.Event]
}

// New creates the application model. When dbPath is non-empty and the
// catalog is configured to watch, changes to the database reload the list.
func New(services mode.Services, dbPath string) Model {
	ctx, cancel := context.WithCancel(context.Background())

	var (
		watcherHandle   *watcher.Watcher
		watcherListener *pubsub.ContinuousListener[watcher.Event]
	)
	if dbPath != "" && services.Config != nil && services.Config.Catalog.Watch {
		w, err := watcher.New(watcher.DefaultConfig(dbPath))
		if err == nil {
			if err := w.Start(); err == nil {
				watcherHandle = w
				watcherListener = pubsub.NewContinuousListener(ctx, w)
			} else {
				log.ErrorErr(log.CatWatcher, "start failed", err)
				_ = w.Stop()
			}
		} else {
			log.ErrorErr(log.CatWatcher, "create failed", err)
		}
	}

	return Model{
		workspace:       workspace.New(services),
		services:        services,
		toaster:         toaster.New(),
		ctx:             ctx,
		cancel:          cancel,
		stateListener:   pubsub.NewContinuousListener(ctx, services.Orchestrator),
		watcherHandle:   watcherHandle,
		watcherListener: watcherListener,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.workspace.Init(),
		m.stateListener.Listen(),
	}
	if m.watcherListener != nil {
		cmds = append(cmds, m.watcherListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.workspace = m.workspace.SetSize(msg.Width, msg.Height)
		return m, nil

	case pubsub.Event[session.State]:
		var cmd tea.Cmd
		m.workspace, cmd = m.workspace.Update(msg)
		return m, tea.Batch(cmd, m.stateListener.Listen())

	case pubsub.Event[watcher.Event]:
		switch msg.Type {
		case pubsub.ChangedEvent:
			if inv, ok := m.services.Catalog.(invalidator); ok {
				if err := inv.Invalidate(m.ctx); err != nil {
					log.ErrorErr(log.CatCache, "invalidate on change", err)
				}
			}
			log.Debug(log.CatWatcher, "catalog changed, reloading", "path", msg.Payload.Path)
			var cmd tea.Cmd
			m.workspace, cmd = m.workspace.Update(workspace.ReloadMsg{})
			return m, tea.Batch(cmd, m.watcherListener.Listen())

		case pubsub.ErrorEvent:
			log.Warn(log.CatWatcher, "watcher error received", "error", msg.Payload.Err)
		}
		return m, m.watcherListener.Listen()

	case mode.ShowToastMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Flash(msg.Message, msg.Style, toaster.DefaultDuration)
		return m, cmd

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.workspace, cmd = m.workspace.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.workspace.View()
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	return view
}

// Toast returns the message currently shown, or "".
func (m Model) Toast() string {
	if !m.toaster.Visible() {
		return ""
	}
	return m.toaster.Message()
}

// Close stops listeners, the watcher and the session.
func (m *Model) Close() error {
	m.cancel()
	var err error
	if m.watcherHandle != nil {
		err = m.watcherHandle.Stop()
	}
	if m.services.Orchestrator != nil {
		m.services.Orchestrator.Close()
	}
	return err
}
