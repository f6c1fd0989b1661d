// Package preview holds the artifacts shown in the preview pane and exports
// them out of the terminal.
package preview

import (
	"github.com/zjrosen/reqdesk/internal/artifact"
	"github.com/zjrosen/reqdesk/internal/step"
)

// Cache holds the current preview and the sticky intermediate artifact.
// The zero value is empty. Cache is a value type; copies are independent.
type Cache struct {
	current         artifact.Artifact
	hasCurrent      bool
	intermediate    artifact.Artifact
	hasIntermediate bool
}

// Current returns the artifact shown in the preview pane.
func (c Cache) Current() (artifact.Artifact, bool) {
	return c.current, c.hasCurrent
}

// Intermediate returns the artifact captured at output-ready.
func (c Cache) Intermediate() (artifact.Artifact, bool) {
	return c.intermediate, c.hasIntermediate
}

// Apply folds a step update into the cache.
func (c *Cache) Apply(u step.Update) {
	switch u.Kind {
	case step.SetPreview:
		c.current, c.hasCurrent = u.Artifact, true
	case step.SetPreviewAndIntermediate:
		c.current, c.hasCurrent = u.Artifact, true
		c.intermediate, c.hasIntermediate = u.Artifact, true
	}
}

// Clear drops both artifacts.
func (c *Cache) Clear() {
	*c = Cache{}
}
