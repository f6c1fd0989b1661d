package catalog

// DefaultPageSize is the number of records per page in the request list.
const DefaultPageSize = 10

// Page is one contiguous window of a list.
type Page[T any] struct {
	Items      []T
	Page       int // clamped, 1-based
	PageSize   int
	TotalPages int
	Total      int
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Page < p.TotalPages }

// TotalPages returns ceil(total/pageSize).
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate returns the window for page. page is clamped to [1, TotalPages]
// first, so out-of-range requests return the nearest valid page.
// pageSize <= 0 selects DefaultPageSize.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	totalPages := TotalPages(total, pageSize)
	page = clampPage(page, totalPages)

	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	return Page[T]{
		Items:      items[start:end:end],
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      total,
	}
}

func clampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Pager is the request list's page position. The zero value is on page 1.
type Pager struct {
	page int
}

// NewPager starts on page 1.
func NewPager() Pager {
	return Pager{page: 1}
}

// Page returns the current 1-based page.
func (p Pager) Page() int {
	if p.page < 1 {
		return 1
	}
	return p.page
}

// Next moves forward one page unless already on the last of totalPages.
func (p Pager) Next(totalPages int) Pager {
	if p.Page() >= totalPages {
		return p
	}
	return Pager{page: p.Page() + 1}
}

// Prev moves back one page unless already on the first.
func (p Pager) Prev() Pager {
	if p.Page() <= 1 {
		return p
	}
	return Pager{page: p.Page() - 1}
}

// Clamp pulls the page into [1, totalPages].
func (p Pager) Clamp(totalPages int) Pager {
	return Pager{page: clampPage(p.Page(), totalPages)}
}
