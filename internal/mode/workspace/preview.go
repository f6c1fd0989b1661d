package workspace

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/reqdesk/internal/artifact"
	"github.com/zjrosen/reqdesk/internal/log"
	"github.com/zjrosen/reqdesk/internal/ui/markdown"
	"github.com/zjrosen/reqdesk/internal/ui/panes"
	"github.com/zjrosen/reqdesk/internal/ui/styles"
)

// previewPane renders the current artifact. Markdown goes through glamour;
// text is shown verbatim.
type previewPane struct {
	viewport *viewport.Model
	style    string
	render   *renderCache
}

// renderCache keeps the last glamour output so View does not re-render on
// every frame.
type renderCache struct {
	renderer *markdown.Renderer
	content  string
	width    int
	out      string
}

func newPreviewPane(style string) previewPane {
	vp := viewport.New(0, 0)
	return previewPane{viewport: &vp, style: style, render: &renderCache{}}
}

type previewView struct {
	width    int
	height   int
	artifact artifact.Artifact
	ok       bool
	focused  bool
}

func (p previewPane) View(v previewView) string {
	cfg := panes.ScrollableConfig{
		Viewport:            p.viewport,
		TopLeft:             "Preview",
		ShowScrollIndicator: true,
		Focused:             v.focused,
		FocusedBorderColor:  styles.BorderHighlightFocusColor,
	}
	if v.ok {
		cfg.TopLeft = v.artifact.FileName
		cfg.TopRight = styles.Badge(v.artifact.FileType.Label(), styles.StatusInfoColor)
		cfg.BottomLeft = styles.FormatChars(v.artifact.Chars())
		cfg.BottomRight = "d download · y copy"
	}

	out := panes.ScrollablePane(v.width, v.height, cfg, func(wrap int) string {
		if !v.ok {
			return styles.MutedStyle.Render("No output yet.\n\nSelect a request and start the conversation to generate a preview.")
		}
		return p.body(v.artifact, wrap)
	})
	return zone.Mark(zonePreview, out)
}

func (p previewPane) body(a artifact.Artifact, wrap int) string {
	if a.FileType != artifact.FileTypeMarkdown {
		return a.Content
	}
	c := p.render
	if c.out != "" && c.content == a.Content && c.width == wrap {
		return c.out
	}
	if c.renderer == nil {
		r, err := markdown.New(wrap, p.style)
		if err != nil {
			log.ErrorErr(log.CatPreview, "markdown renderer", err)
			return a.Content
		}
		c.renderer = r
	} else if err := c.renderer.SetWidth(wrap); err != nil {
		log.ErrorErr(log.CatPreview, "markdown resize", err)
		return a.Content
	}
	out, err := c.renderer.Render(a.Content)
	if err != nil {
		log.ErrorErr(log.CatPreview, "markdown render", err, "file", a.FileName)
		return a.Content
	}
	c.content, c.width, c.out = a.Content, wrap, strings.TrimRight(out, "\n")
	return c.out
}
