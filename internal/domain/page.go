package domain

import "math"

// Page is a 1-based pagination request.
type Page struct {
	Page  int
	Limit int
}

func NewPage(page, limit, defaultLimit, maxLimit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	// Keeps Offset and HasMore from overflowing on absurd page numbers.
	if limit > 0 && page > math.MaxInt32/limit {
		page = math.MaxInt32 / limit
	}
	return Page{Page: page, Limit: limit}
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p Page) HasMore(total int64) bool {
	return total > int64(p.Page*p.Limit)
}

type PageResult[T any] struct {
	Items   []T
	HasMore bool
}
