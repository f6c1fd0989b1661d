package session

import (
	"github.com/zjrosen/reqdesk/internal/artifact"
	"github.com/zjrosen/reqdesk/internal/panels"
	"github.com/zjrosen/reqdesk/internal/preview"
	"github.com/zjrosen/reqdesk/internal/step"
)

// State is a snapshot of everything the panes share. It is a value; holding
// one never observes later changes.
type State struct {
	SessionID         string
	NamespaceID       string
	SelectedRequestID string // empty when nothing is selected
	CurrentStep       step.Step
	Artifacts         preview.Cache
	Panels            panels.Visibility
}

// HasSelection reports whether a request is selected.
func (s State) HasSelection() bool {
	return s.SelectedRequestID != ""
}

// Preview returns the artifact shown in the preview pane.
func (s State) Preview() (artifact.Artifact, bool) {
	return s.Artifacts.Current()
}

// Intermediate returns the artifact captured at output-ready.
func (s State) Intermediate() (artifact.Artifact, bool) {
	return s.Artifacts.Intermediate()
}

// OverlayVisible reports whether the compact-layout overlay is drawn.
func (s State) OverlayVisible() bool {
	return s.Panels.OverlayVisible()
}
