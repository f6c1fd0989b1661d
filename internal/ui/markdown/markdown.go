// Package markdown renders markdown previews for the terminal.
package markdown

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// noMarginStyle removes the document margin glamour adds by default.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// DefaultStyle is used when no style is configured.
const DefaultStyle = "dark"

// Renderer wraps a glamour renderer and rebuilds it when the wrap width changes.
type Renderer struct {
	renderer *glamour.TermRenderer
	style    string
	width    int
}

// New creates a renderer wrapping at width. style is a glamour style name
// ("dark", "light", "notty", ...) or a path to a JSON style file.
// A fixed style avoids the terminal background query WithAutoStyle performs.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = DefaultStyle
	}
	r := &Renderer{style: style}
	if err := r.build(max(width, 1)); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) build(width int) error {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStylePath(r.style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("markdown renderer (style %q): %w", r.style, err)
	}
	r.renderer = tr
	r.width = width
	return nil
}

// Width returns the configured wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Style returns the configured glamour style.
func (r *Renderer) Style() string {
	return r.style
}

// SetWidth changes the wrap width, rebuilding the renderer only when it differs.
func (r *Renderer) SetWidth(width int) error {
	width = max(width, 1)
	if width == r.width {
		return nil
	}
	return r.build(width)
}

// Render transforms markdown into styled terminal output.
func (r *Renderer) Render(md string) (string, error) {
	return r.renderer.Render(md)
}
