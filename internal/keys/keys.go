// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// workspaceKeys holds the bindings of the three-pane workspace.
type workspaceKeys struct {
	// Navigation
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	PrevNS    key.Binding
	NextNS    key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	PageUp    key.Binding
	PageDown  key.Binding

	// Actions
	NewRequest key.Binding
	Send       key.Binding
	Export     key.Binding
	Copy       key.Binding

	// Layout
	Collapse      key.Binding
	ToggleSidebar key.Binding
	TogglePreview key.Binding

	// General
	Escape key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// Workspace is the keymap used by the workspace mode.
var Workspace = workspaceKeys{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select request"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next page"),
	),
	PrevNS: key.NewBinding(
		key.WithKeys("<"),
		key.WithHelp("<", "prev namespace"),
	),
	NextNS: key.NewBinding(
		key.WithKeys(">"),
		key.WithHelp(">", "next namespace"),
	),
	NextFocus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next pane"),
	),
	PrevFocus: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev pane"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "scroll down"),
	),
	NewRequest: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "new request"),
	),
	Send: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "send"),
	),
	Export: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "download"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Collapse: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "collapse list"),
	),
	ToggleSidebar: key.NewBinding(
		key.WithKeys("ctrl+b"),
		key.WithHelp("ctrl+b", "sidebar"),
	),
	TogglePreview: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "preview"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close / back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ForceQuit quits even while the chat input has focus.
var ForceQuit = key.NewBinding(
	key.WithKeys("ctrl+c"),
	key.WithHelp("ctrl+c", "quit"),
)

// ShortHelp implements help.KeyMap.
func (k workspaceKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.NewRequest, k.ToggleSidebar, k.TogglePreview, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k workspaceKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.PrevPage, k.NextPage, k.Collapse},
		{k.PrevNS, k.NextNS, k.NextFocus, k.PrevFocus, k.PageUp, k.PageDown},
		{k.NewRequest, k.Send, k.Export, k.Copy},
		{k.ToggleSidebar, k.TogglePreview, k.Escape, k.Help, k.Quit},
	}
}
