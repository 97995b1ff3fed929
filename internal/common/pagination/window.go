package pagination

// WindowSize is the maximum number of consecutive page buttons shown in the
// page-number navigation.
const WindowSize = 5

// Window describes the page-number buttons a list view should render:
// up to WindowSize consecutive pages centered on the current page, clamped
// to [1, totalPages], with markers for reaching the first/last page when
// the window does not touch the boundary.
type Window struct {
	Pages            []int `json:"pages"`             // consecutive page numbers to render
	ShowFirst        bool  `json:"show_first"`        // render a "1" shortcut before the window
	ShowLast         bool  `json:"show_last"`         // render a last-page shortcut after the window
	LeadingEllipsis  bool  `json:"leading_ellipsis"`  // gap between "1" and the window
	TrailingEllipsis bool  `json:"trailing_ellipsis"` // gap between the window and the last page
}

// NewWindow computes the page-number window for the given current page and
// page count. For totalPages == 0 the window is empty. The current page is
// clamped into [1, totalPages] first, so a stale page request after a delete
// still produces a valid window.
func NewWindow(current, totalPages int) Window {
	if totalPages <= 0 {
		return Window{Pages: []int{}}
	}

	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	start := current - WindowSize/2
	end := start + WindowSize - 1

	if start < 1 {
		start = 1
		end = start + WindowSize - 1
	}
	if end > totalPages {
		end = totalPages
		start = end - WindowSize + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}

	return Window{
		Pages:            pages,
		ShowFirst:        start > 1,
		ShowLast:         end < totalPages,
		LeadingEllipsis:  start > 2,
		TrailingEllipsis: end < totalPages-1,
	}
}
