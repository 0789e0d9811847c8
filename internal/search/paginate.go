package search

import "github.com/yoyakulabs/clinic-navi/internal/domain/entities"

// PageSize is the fixed number of clinics per result page.
const PageSize = 15

// Sort selects the deterministic ordering applied before windowing.
type Sort int

const (
	// SortByRating orders by rating descending with missing ratings last,
	// then creation time descending, then id. The default.
	SortByRating Sort = iota
	// SortByNewest orders by creation time descending, then id.
	SortByNewest
)

// NormalizePage maps arbitrary user input to a usable 1-based page
// number. Non-positive values become page 1; a page beyond the last is
// left alone and simply yields an empty page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Offset returns the 0-based row offset for a 1-based page number.
func Offset(page int) int {
	return (NormalizePage(page) - 1) * PageSize
}

// TotalPages computes ceil(totalCount / PageSize). Zero rows means zero
// pages.
func TotalPages(totalCount int) int {
	if totalCount <= 0 {
		return 0
	}
	return (totalCount + PageSize - 1) / PageSize
}

// PaginationFor assembles the paging metadata for a fetched page.
// rowsOnPage is the number of rows actually returned; range bounds are
// 1-based and zero when the page is empty.
func PaginationFor(page, totalCount, rowsOnPage int) entities.Pagination {
	page = NormalizePage(page)
	p := entities.Pagination{
		CurrentPage: page,
		TotalPages:  TotalPages(totalCount),
		TotalCount:  totalCount,
	}
	if rowsOnPage > 0 {
		p.RangeStart = Offset(page) + 1
		p.RangeEnd = Offset(page) + rowsOnPage
	}
	return p
}
