package paginator

// Normalize fills defaults. A zero Limit takes fallback before clamping.
func (q Query) Normalize(fallback int) Query {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = fallback
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Slice cuts one page out of items. q must be normalized.
func Slice[T any](items []T, q Query) ([]T, Meta) {
	start := min(q.Offset(), len(items))
	end := min(start+q.Limit, len(items))
	page := items[start:end]
	return page, Meta{
		Total:       len(items),
		Count:       len(page),
		PerPage:     q.Limit,
		CurrentPage: q.Page,
	}
}

func (m Meta) TotalPages() int {
	if m.Total == 0 || m.PerPage == 0 {
		return 0
	}
	return (m.Total + m.PerPage - 1) / m.PerPage
}

func (m Meta) HasNextPage() bool {
	return m.CurrentPage < m.TotalPages()
}

func (m Meta) HasPreviousPage() bool {
	return m.CurrentPage > 1
}

func (m Meta) ToResponse() Response {
	return Response{
		Total:       m.Total,
		Count:       m.Count,
		PerPage:     m.PerPage,
		CurrentPage: m.CurrentPage,
		TotalPages:  m.TotalPages(),
		HasNext:     m.HasNextPage(),
		HasPrev:     m.HasPreviousPage(),
	}
}

// Advance returns the range [start, end) to reveal next out of total items
// and whether anything remains after it.
func (w Window) Advance(total int) (start, end int, hasMore bool) {
	limit := total
	if w.Cap > 0 && limit > w.Cap {
		limit = w.Cap
	}
	start = min(max(w.Loaded, 0), limit)
	end = min(start+max(w.Step, 0), limit)
	return start, end, end < limit
}
