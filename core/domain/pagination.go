// ABOUTME: Pagination metadata derived from WordPress collection headers
// ABOUTME: Navigation flags are computed once so callers never redo the math

package domain

// PaginationInfo describes where a page sits in a paginated collection
type PaginationInfo struct {
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	CurrentPage int  `json:"current_page"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// NewPaginationInfo derives pagination for the requested page.
// A page below 1 is treated as the first page.
func NewPaginationInfo(total, totalPages, currentPage int) *PaginationInfo {
	if currentPage < 1 {
		currentPage = 1
	}

	return &PaginationInfo{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		HasNext:     currentPage < totalPages,
		HasPrev:     currentPage > 1,
	}
}
