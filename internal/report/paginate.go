package report

import "vitalog/internal/store"

// Page is one slice of the sorted, filtered record sequence.
type Page struct {
	Records []store.Record
	Number  int
	Total   int
}

// Paginate slices records into the requested page. Total pages is at least
// 1 even for empty input, and out-of-range page numbers clamp to the last
// page rather than erroring.
func Paginate(recs []store.Record, page, perPage int) Page {
	if perPage < 1 {
		perPage = 1
	}
	total := (len(recs) + perPage - 1) / perPage
	if total < 1 {
		total = 1
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(recs) {
		start = len(recs)
	}
	if end > len(recs) {
		end = len(recs)
	}
	return Page{Records: recs[start:end], Number: page, Total: total}
}

// PageButton is one element of the pagination strip: a numbered button or
// an inert ellipsis.
type PageButton struct {
	Page     int
	Current  bool
	Ellipsis bool
}

// PageButtons produces up to 5 page numbers centered on the current page,
// clamped to valid bounds, with first/last shortcuts and ellipses when the
// window does not reach a boundary.
func PageButtons(current, total int) []PageButton {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start := current - 2
	if start < 1 {
		start = 1
	}
	end := start + 4
	if end > total {
		end = total
	}
	if end-start < 4 {
		start = end - 4
		if start < 1 {
			start = 1
		}
	}

	var out []PageButton
	if start > 1 {
		out = append(out, PageButton{Page: 1})
		if start > 2 {
			out = append(out, PageButton{Ellipsis: true})
		}
	}
	for p := start; p <= end; p++ {
		out = append(out, PageButton{Page: p, Current: p == current})
	}
	if end < total {
		if end < total-1 {
			out = append(out, PageButton{Ellipsis: true})
		}
		out = append(out, PageButton{Page: total})
	}
	return out
}
