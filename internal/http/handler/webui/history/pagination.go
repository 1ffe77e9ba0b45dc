package history

import (
	"net/url"
	"strconv"
)

const maxPageSize = 100

type pagination struct {
	Page     int
	PageSize int
}

// parsePagination reads the page and page size of the query. Invalid values
// fall back to the first page and the default page size.
func parsePagination(query url.Values, defaultPageSize int) pagination {
	p := pagination{Page: 1, PageSize: defaultPageSize}

	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		p.Page = page
	}

	if pageSize, err := strconv.Atoi(query.Get("pageSize")); err == nil && pageSize > 0 {
		p.PageSize = min(pageSize, maxPageSize)
	}

	return p
}

func (p pagination) HasPrev() bool {
	return p.Page > 1
}
