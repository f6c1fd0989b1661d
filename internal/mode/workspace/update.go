package workspace

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/reqdesk/internal/keys"
	"github.com/zjrosen/reqdesk/internal/log"
	"github.com/zjrosen/reqdesk/internal/mode"
	"github.com/zjrosen/reqdesk/internal/preview"
	"github.com/zjrosen/reqdesk/internal/pubsub"
	"github.com/zjrosen/reqdesk/internal/session"
	"github.com/zjrosen/reqdesk/internal/ui/toaster"
	"github.com/zjrosen/reqdesk/internal/workflow"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil

	case RecordsLoadedMsg:
		return m.handleRecords(msg)

	case ReloadMsg:
		ns := m.state().NamespaceID
		m.loadingNS = ns
		return m, m.loadRecords(ns)

	case pubsub.Event[session.State]:
		return m.syncNamespace()

	case workflow.AdvanceMsg:
		return m.handleAdvance(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleRecords(msg RecordsLoadedMsg) (mode.Controller, tea.Cmd) {
	if msg.Namespace == m.loadingNS {
		m.loadingNS = ""
	}
	if msg.Namespace != m.state().NamespaceID {
		log.Debug(log.CatCatalog, "dropped stale load", "namespace", msg.Namespace)
		return m, nil
	}
	if msg.Err != nil {
		log.ErrorErr(log.CatCatalog, "load failed", msg.Err, "namespace", msg.Namespace)
		m.list = m.list.SetError(msg.Namespace, msg.Err)
		return m, mode.Toast("Could not load requests: "+msg.Err.Error(), toaster.StyleError)
	}
	m.list = m.list.SetRecords(msg.Namespace, msg.Records)
	log.Debug(log.CatCatalog, "loaded", "namespace", msg.Namespace, "records", len(msg.Records))
	return m, nil
}

func (m Model) handleAdvance(msg workflow.AdvanceMsg) (mode.Controller, tea.Cmd) {
	s, cmd, ok := m.engine.Handle(msg)
	if !ok {
		return m, nil
	}
	before, hadPreview := m.state().Preview()
	m.orch.AdvanceStep(s)
	if after, ok := m.state().Preview(); ok && (!hadPreview || after != before) {
		m.preview.viewport.GotoTop()
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	k := keys.Workspace

	switch {
	case key.Matches(msg, keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, k.NewRequest):
		return m.createRequest()
	case key.Matches(msg, k.ToggleSidebar):
		m.orch.ToggleSidebar()
		if m.state().Panels.SidebarOpen && m.compact() {
			return m.setFocus(focusRequests), nil
		}
		return m.fixFocus(), nil
	case key.Matches(msg, k.TogglePreview):
		m.orch.ToggleRightPane()
		return m.fixFocus(), nil
	case key.Matches(msg, k.NextFocus):
		return m.cycleFocus(1), nil
	case key.Matches(msg, k.PrevFocus):
		return m.cycleFocus(-1), nil
	case key.Matches(msg, k.Escape):
		return m.escape(), nil
	case key.Matches(msg, k.PageUp):
		m.scroll(-1)
		return m, nil
	case key.Matches(msg, k.PageDown):
		m.scroll(1)
		return m, nil
	}

	if m.focus == focusChat {
		if key.Matches(msg, k.Send) {
			return m.send()
		}
		var cmd tea.Cmd
		m.chat.input, cmd = m.chat.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.PrevNS):
		return m.selectNamespace(m.registry.Prev(m.state().NamespaceID).ID)
	case key.Matches(msg, k.NextNS):
		return m.selectNamespace(m.registry.Next(m.state().NamespaceID).ID)
	case key.Matches(msg, k.PrevPage):
		m.list = m.list.PrevPage()
	case key.Matches(msg, k.NextPage):
		m.list = m.list.NextPage()
	case key.Matches(msg, k.Up):
		if m.focus == focusPreview {
			m.preview.viewport.ScrollUp(1)
		} else {
			m.list = m.list.Up()
		}
	case key.Matches(msg, k.Down):
		if m.focus == focusPreview {
			m.preview.viewport.ScrollDown(1)
		} else {
			m.list = m.list.Down()
		}
	case key.Matches(msg, k.Select):
		if m.focus == focusRequests {
			return m.selectCurrent()
		}
	case key.Matches(msg, k.Collapse):
		m.orch.ToggleRequestsExpanded()
	case key.Matches(msg, k.Export):
		return m.export()
	case key.Matches(msg, k.Copy):
		return m.copyPreview()
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// escape closes the sidebar overlay first, then leaves the chat input.
func (m Model) escape() Model {
	if m.compact() && m.state().OverlayVisible() {
		m.orch.CloseSidebar()
		return m.setFocus(focusChat)
	}
	if m.focus == focusChat && m.state().Panels.SidebarOpen {
		return m.setFocus(focusRequests)
	}
	return m
}

func (m Model) scroll(dir int) {
	vp := m.chat.viewport
	if m.focus == focusPreview {
		vp = m.preview.viewport
	}
	if dir < 0 {
		vp.HalfPageUp()
	} else {
		vp.HalfPageDown()
	}
}

func (m Model) selectNamespace(id string) (mode.Controller, tea.Cmd) {
	if err := m.orch.SelectNamespace(id); err != nil {
		return m, mode.Toast(err.Error(), toaster.StyleError)
	}
	return m.syncNamespace()
}

func (m Model) selectCurrent() (mode.Controller, tea.Cmd) {
	rec, ok := m.list.Current()
	if !ok {
		return m, nil
	}
	return m.selectRequest(rec.ID), nil
}

func (m Model) selectRequest(id string) Model {
	m.orch.SelectRequest(id)
	m.engine.Reset(id)
	m.chat.viewport.GotoBottom()
	m.preview.viewport.GotoTop()
	return m
}

func (m Model) createRequest() (mode.Controller, tea.Cmd) {
	id := m.orch.CreateRequest()
	m.engine.Reset(id)
	m.chat.viewport.GotoBottom()
	m.preview.viewport.GotoTop()
	m = m.setFocus(focusChat)
	if m.compact() && m.state().OverlayVisible() {
		m.orch.CloseSidebar()
	}
	return m, mode.Toast("Created "+id, toaster.StyleInfo)
}

func (m Model) send() (mode.Controller, tea.Cmd) {
	if !m.state().HasSelection() {
		return m, mode.Toast("Select or create a request first", toaster.StyleWarn)
	}
	text := m.chat.input.Value()
	m.chat.input.Reset()
	m.chat.viewport.GotoBottom()
	return m, m.engine.Submit(text)
}

func (m Model) export() (mode.Controller, tea.Cmd) {
	a, ok := m.state().Preview()
	dl, done, err := m.exporter.Export(a, ok)
	if err != nil {
		log.ErrorErr(log.CatPreview, "export failed", err, "file", a.FileName)
		return m, mode.Toast("Export failed: "+err.Error(), toaster.StyleError)
	}
	if !done {
		return m, nil
	}
	return m, mode.Toast(fmt.Sprintf("Saved %s (%s, %d bytes)", dl.Path, dl.MIMEType, dl.Size), toaster.StyleSuccess)
}

func (m Model) copyPreview() (mode.Controller, tea.Cmd) {
	a, ok := m.state().Preview()
	done, err := preview.CopyArtifact(m.clipboard, a, ok)
	if err != nil {
		log.ErrorErr(log.CatPreview, "copy failed", err)
		return m, mode.Toast("Copy failed: "+err.Error(), toaster.StyleError)
	}
	if !done {
		return m, nil
	}
	return m, mode.Toast("Copied "+a.FileName+" to clipboard", toaster.StyleSuccess)
}

func (m Model) handleMouse(msg tea.MouseMsg) (mode.Controller, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown) {
		for _, t := range []struct {
			id string
			vp *viewport.Model
		}{
			{zoneChat, m.chat.viewport},
			{zonePreview, m.preview.viewport},
		} {
			if inZone(t.id, msg) {
				*t.vp, _ = t.vp.Update(msg)
				return m, nil
			}
		}
		return m, nil
	}

	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	overlay := m.compact() && m.state().OverlayVisible()
	if overlay {
		if z := zone.Get(zoneSidebar); z == nil || !z.InBounds(msg) {
			m.orch.CloseSidebar()
			return m.setFocus(focusChat), nil
		}
	}

	if m.state().Panels.SidebarOpen {
		for i := range len(m.list.page().Items) {
			if z := zone.Get(makeRequestZoneID(i)); z != nil && z.InBounds(msg) {
				m = m.setFocus(focusRequests)
				m.list, _ = m.list.SetCursor(i)
				return m.selectCurrent()
			}
		}
		if inZone(zonePagePrev, msg) {
			m.list = m.list.PrevPage()
			return m, nil
		}
		if inZone(zonePageNext, msg) {
			m.list = m.list.NextPage()
			return m, nil
		}
	}

	switch {
	case inZone(zoneNSPrev, msg):
		return m.selectNamespace(m.registry.Prev(m.state().NamespaceID).ID)
	case inZone(zoneNSNext, msg):
		return m.selectNamespace(m.registry.Next(m.state().NamespaceID).ID)
	case inZone(zoneChatInput, msg), inZone(zoneChat, msg):
		return m.setFocus(focusChat), nil
	case inZone(zonePreview, msg):
		return m.setFocus(focusPreview), nil
	case inZone(zoneSidebar, msg):
		return m.setFocus(focusRequests), nil
	}
	return m, nil
}

func inZone(id string, msg tea.MouseMsg) bool {
	z := zone.Get(id)
	return z != nil && z.InBounds(msg)
}
