package workspace

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/reqdesk/internal/catalog"
	"github.com/zjrosen/reqdesk/internal/ui/panes"
	"github.com/zjrosen/reqdesk/internal/ui/styles"
)

// rowHeight is the number of lines one request occupies in the list.
const rowHeight = 2

// requestList shows one page of a namespace's catalog.
type requestList struct {
	namespace string
	records   []catalog.Record
	loaded    bool
	err       error
	pageSize  int
	pager     catalog.Pager
	cursor    int
}

func newRequestList(pageSize int) requestList {
	if pageSize < 1 {
		pageSize = catalog.DefaultPageSize
	}
	return requestList{pageSize: pageSize, pager: catalog.NewPager()}
}

// SetRecords replaces the list contents. The page is kept when possible and
// clamped otherwise; the cursor is kept inside the page.
func (l requestList) SetRecords(namespaceID string, records []catalog.Record) requestList {
	l.namespace = namespaceID
	l.records = records
	l.loaded = true
	l.err = nil
	l.pager = l.pager.Clamp(l.totalPages())
	l.cursor = min(l.cursor, max(len(l.page().Items)-1, 0))
	return l
}

// Loading shows the loading state for namespaceID. The pager is kept so it
// can be clamped against the new namespace once records arrive.
func (l requestList) Loading(namespaceID string) requestList {
	l.namespace = namespaceID
	l.records = nil
	l.loaded = false
	l.err = nil
	return l
}

// SetError records a failed load.
func (l requestList) SetError(namespaceID string, err error) requestList {
	l.namespace = namespaceID
	l.records = nil
	l.loaded = true
	l.err = err
	l.pager = l.pager.Clamp(0)
	l.cursor = 0
	return l
}

func (l requestList) totalPages() int {
	return catalog.TotalPages(len(l.records), l.pageSize)
}

func (l requestList) page() catalog.Page[catalog.Record] {
	return catalog.Paginate(l.records, l.pager.Page(), l.pageSize)
}

func (l requestList) NextPage() requestList {
	before := l.pager.Page()
	l.pager = l.pager.Next(l.totalPages())
	if l.pager.Page() != before {
		l.cursor = 0
	}
	return l
}

func (l requestList) PrevPage() requestList {
	before := l.pager.Page()
	l.pager = l.pager.Prev()
	if l.pager.Page() != before {
		l.cursor = 0
	}
	return l
}

func (l requestList) Up() requestList {
	l.cursor = max(l.cursor-1, 0)
	return l
}

func (l requestList) Down() requestList {
	l.cursor = min(l.cursor+1, max(len(l.page().Items)-1, 0))
	return l
}

// SetCursor moves the cursor to index on the current page.
func (l requestList) SetCursor(index int) (requestList, bool) {
	if index < 0 || index >= len(l.page().Items) {
		return l, false
	}
	l.cursor = index
	return l, true
}

// Current returns the record under the cursor.
func (l requestList) Current() (catalog.Record, bool) {
	items := l.page().Items
	if l.cursor >= len(items) {
		return catalog.Record{}, false
	}
	return items[l.cursor], true
}

// PageLabel renders "Page X of Y".
func (l requestList) PageLabel() string {
	p := l.page()
	return fmt.Sprintf("Page %d of %d", p.Page, p.TotalPages)
}

type listView struct {
	width      int
	height     int
	title      string
	selectedID string
	focused    bool
	expanded   bool
	now        time.Time
}

// View renders the list inside a bordered pane.
func (l requestList) View(v listView) string {
	inner := max(v.width-2, 1)

	var body string
	switch {
	case !v.expanded:
		body = styles.MutedStyle.Render(fmt.Sprintf("▸ %d requests (e to expand)", len(l.records)))
	case !l.loaded:
		body = styles.MutedStyle.Render("Loading...")
	case l.err != nil:
		body = styles.ErrorStyle.Render(styles.TruncateString("Load failed: "+l.err.Error(), inner))
	case len(l.records) == 0:
		body = styles.MutedStyle.Render("No requests in this namespace.")
	default:
		body = l.rows(v, inner)
	}

	bottomLeft := ""
	bottomRight := ""
	if v.expanded && l.loaded && l.err == nil && len(l.records) > 0 {
		bottomLeft = l.PageLabel()
		bottomRight = zone.Mark(zonePagePrev, "[") + " " + zone.Mark(zonePageNext, "]")
	}

	return panes.BorderedPane(panes.BorderConfig{
		Content:            body,
		Width:              v.width,
		Height:             v.height,
		TopLeft:            "Requests",
		TopRight:           v.title,
		BottomLeft:         bottomLeft,
		BottomRight:        bottomRight,
		Focused:            v.focused,
		FocusedBorderColor: styles.BorderHighlightFocusColor,
	})
}

func (l requestList) rows(v listView, inner int) string {
	items := l.page().Items
	maxRows := max((v.height-2)/rowHeight, 1)
	start := 0
	if l.cursor >= maxRows {
		start = l.cursor - maxRows + 1
	}

	var b strings.Builder
	for i := start; i < len(items) && i < start+maxRows; i++ {
		rec := items[i]

		indicator := "  "
		if i == l.cursor && v.focused {
			indicator = styles.SelectionIndicatorStyle.Render("> ")
		}
		badge := styles.StatusBadge(rec.Status)
		idWidth := max(inner-2-lipgloss.Width(badge)-1, 4)
		id := styles.PadRight(rec.ID, idWidth)
		if rec.ID == v.selectedID {
			id = styles.SelectedRowStyle.Render(id)
		}
		line1 := indicator + id + " " + badge

		line2 := styles.MutedStyle.Render(styles.TruncateString(
			fmt.Sprintf("  created %s · modified %s",
				relativeTime(rec.CreatedAt, v.now), relativeTime(rec.LastModified, v.now)),
			inner))

		if i > start {
			b.WriteString("\n")
		}
		b.WriteString(zone.Mark(makeRequestZoneID(i), line1+"\n"+line2))
	}
	return b.String()
}
