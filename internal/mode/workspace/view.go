package workspace

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/reqdesk/internal/keys"
	"github.com/zjrosen/reqdesk/internal/ui/overlay"
	"github.com/zjrosen/reqdesk/internal/ui/styles"
)

var headerStyle = lipgloss.NewStyle().Padding(0, 1)

// View renders the workspace.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	footer := headerStyle.Render(m.help.View(keys.Workspace))
	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 3)

	body := m.renderBody(bodyHeight)
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
}

func (m Model) renderHeader() string {
	st := m.state()
	ns, _ := m.registry.Lookup(st.NamespaceID)

	selector := zone.Mark(zoneNSPrev, styles.MutedStyle.Render("‹")) + " " +
		styles.TitleStyle.Render(ns.Name) + " " +
		zone.Mark(zoneNSNext, styles.MutedStyle.Render("›"))
	left := styles.TitleStyle.Render("reqdesk") + styles.MutedStyle.Render("  namespace ") + selector

	right := styles.MutedStyle.Render("no request selected")
	if st.HasSelection() {
		right = st.SelectedRequestID + "  " + StepIndicator(st.CurrentStep)
	}

	inner := max(m.width-2, 1)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return headerStyle.Render(ansi.Truncate(left, inner, "…"))
	}
	return headerStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderBody(height int) string {
	st := m.state()
	sidebarW, centerW, rightW := m.layout()

	var cols []string
	if sidebarW > 0 {
		cols = append(cols, m.renderSidebar(sidebarW, height))
	}
	cols = append(cols, m.chat.View(chatView{
		width:      centerW,
		height:     height,
		requestID:  st.SelectedRequestID,
		current:    st.CurrentStep,
		transcript: m.engine.Transcript(),
		focused:    m.focus == focusChat,
		busy:       m.engine.Busy(),
	}))
	if rightW > 0 {
		a, ok := st.Preview()
		cols = append(cols, m.preview.View(previewView{
			width:    rightW,
			height:   height,
			artifact: a,
			ok:       ok,
			focused:  m.focus == focusPreview,
		}))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	if m.compact() && st.OverlayVisible() {
		w := min(sidebarWidth, max(m.width-4, 10))
		body = overlay.Place(overlay.Config{
			Width:    m.width,
			Height:   height,
			Position: overlay.Left,
		}, m.renderSidebar(w, height), body)
	}
	return body
}

func (m Model) renderSidebar(width, height int) string {
	st := m.state()
	ns, _ := m.registry.Lookup(st.NamespaceID)
	return zone.Mark(zoneSidebar, m.list.View(listView{
		width:      width,
		height:     height,
		title:      ns.Name,
		selectedID: st.SelectedRequestID,
		focused:    m.focus == focusRequests,
		expanded:   st.Panels.RequestsExpanded,
		now:        m.clock.Now(),
	}))
}
