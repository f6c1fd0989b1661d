// Package panels tracks which parts of the workspace are shown.
package panels

// Visibility holds the independent panel toggles.
type Visibility struct {
	SidebarOpen      bool
	RequestsExpanded bool
	RightPaneVisible bool
}

// Default shows everything.
func Default() Visibility {
	return Visibility{SidebarOpen: true, RequestsExpanded: true, RightPaneVisible: true}
}

// ToggleSidebar flips the sidebar.
func (v *Visibility) ToggleSidebar() { v.SidebarOpen = !v.SidebarOpen }

// ToggleRequestsExpanded flips the request list section.
func (v *Visibility) ToggleRequestsExpanded() { v.RequestsExpanded = !v.RequestsExpanded }

// ToggleRightPane flips the preview pane.
func (v *Visibility) ToggleRightPane() { v.RightPaneVisible = !v.RightPaneVisible }

// CloseSidebar hides the sidebar and with it the compact-layout overlay.
func (v *Visibility) CloseSidebar() { v.SidebarOpen = false }

// OverlayVisible reports whether the compact-layout overlay is drawn.
func (v Visibility) OverlayVisible() bool { return v.SidebarOpen }
