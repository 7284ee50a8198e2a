// Package pagination slices ordered results into fixed-size, 1-indexed pages.
//
// A page number past the last page is not an error: it yields an empty page
// with HasNext false.
package pagination

import "strconv"

// PageSize is the listing size for postings and comments.
const PageSize = 10

// ParsePage returns the requested page, defaulting to 1 when raw is empty,
// non-numeric or below 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

type Pager struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	HasNext    bool
}

func New(total, pageSize, page int) Pager {
	if pageSize < 1 {
		pageSize = PageSize
	}
	if page < 1 {
		page = 1
	}
	if total < 0 {
		total = 0
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return Pager{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

func (p Pager) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Pager) Limit() int {
	return p.PageSize
}

// OutOfRange reports whether the page lies past the last non-empty page.
func (p Pager) OutOfRange() bool {
	return p.Offset() >= p.Total && p.Page > 1
}

type Page[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// FromPager wraps items that were already fetched with the pager's offset and limit.
func FromPager[T any](pager Pager, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Page:       pager.Page,
		TotalPages: pager.TotalPages,
		HasNext:    pager.HasNext,
	}
}
