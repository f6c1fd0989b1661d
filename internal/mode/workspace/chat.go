package workspace

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/zjrosen/reqdesk/internal/step"
	"github.com/zjrosen/reqdesk/internal/ui/panes"
	"github.com/zjrosen/reqdesk/internal/ui/styles"
	"github.com/zjrosen/reqdesk/internal/workflow"
)

// inputHeight is the bordered input box below the transcript.
const inputHeight = 3

var (
	roleStyles = map[workflow.Role]lipgloss.Style{
		workflow.RoleUser:   lipgloss.NewStyle().Bold(true).Foreground(styles.RoleUserColor),
		workflow.RoleAgent:  lipgloss.NewStyle().Bold(true).Foreground(styles.RoleAgentColor),
		workflow.RoleSystem: lipgloss.NewStyle().Italic(true).Foreground(styles.RoleSystemColor),
	}
	roleLabels = map[workflow.Role]string{
		workflow.RoleUser:   "You",
		workflow.RoleAgent:  "Agent",
		workflow.RoleSystem: "System",
	}
	stepColors = map[step.Step]lipgloss.TerminalColor{
		step.Idle:        styles.TextMutedColor,
		step.Analyzing:   styles.StatusInfoColor,
		step.Processing:  styles.StatusInfoColor,
		step.OutputReady: styles.StatusWarningColor,
		step.Refining:    styles.StatusInfoColor,
		step.Complete:    styles.StatusSuccessColor,
	}
)

// chatPane holds the transcript viewport and the message input.
type chatPane struct {
	viewport *viewport.Model
	input    textinput.Model
}

func newChatPane() chatPane {
	vp := viewport.New(0, 0)
	in := textinput.New()
	in.Placeholder = "Describe the request, then press enter"
	in.Prompt = "› "
	in.CharLimit = 2000
	in.Cursor.SetMode(cursor.CursorStatic)
	return chatPane{viewport: &vp, input: in}
}

type chatView struct {
	width      int
	height     int
	requestID  string
	current    step.Step
	transcript []workflow.Message
	focused    bool
	busy       bool
}

// StepIndicator renders the current step as "● label".
func StepIndicator(s step.Step) string {
	c, ok := stepColors[s]
	if !ok {
		c = styles.TextMutedColor
	}
	return lipgloss.NewStyle().Foreground(c).Render("● " + s.Label())
}

func (c chatPane) View(v chatView) string {
	logHeight := max(v.height-inputHeight, 3)

	title := "Chat"
	if v.requestID != "" {
		title = "Chat · " + v.requestID
	}
	bottomLeft := ""
	if v.busy {
		bottomLeft = "working..."
	}

	log := panes.ScrollablePane(v.width, logHeight, panes.ScrollableConfig{
		Viewport:            c.viewport,
		TopLeft:             title,
		TopRight:            StepIndicator(v.current),
		BottomLeft:          bottomLeft,
		BottomAligned:       true,
		ShowScrollIndicator: true,
		Focused:             v.focused,
		FocusedBorderColor:  styles.BorderHighlightFocusColor,
	}, func(wrap int) string {
		return renderTranscript(v.transcript, v.requestID, wrap)
	})

	c.input.Width = max(v.width-4-lipgloss.Width(c.input.Prompt), 1)
	input := panes.BorderedPane(panes.BorderConfig{
		Content:            c.input.View(),
		Width:              v.width,
		Height:             inputHeight,
		Focused:            v.focused,
		FocusedBorderColor: styles.BorderHighlightFocusColor,
	})

	return zone.Mark(zoneChat, log) + "\n" + zone.Mark(zoneChatInput, input)
}

func renderTranscript(msgs []workflow.Message, requestID string, wrap int) string {
	if requestID == "" {
		return styles.MutedStyle.Render("Select a request from the list or press ctrl+n to create one.")
	}
	blocks := make([]string, 0, len(msgs))
	for _, m := range msgs {
		header := roleStyles[m.Role].Render(roleLabels[m.Role]) +
			styles.MutedStyle.Render(" · "+m.Time.Format("15:04:05"))
		blocks = append(blocks, header+"\n"+wrapText(m.Content, wrap))
	}
	return strings.Join(blocks, "\n\n")
}

// wrapText word-wraps s to width, hard-breaking words longer than a line.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wrap.String(wordwrap.String(s, width), width)
}
