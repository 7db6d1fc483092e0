// Package pagination provides in-memory page slicing for small result sets
// that are fetched whole and presented page by page.
package pagination

// DefaultPerPage is used when the caller passes a non-positive page size.
const DefaultPerPage = 10

// Page holds one page of items plus paging metadata.
type Page[T any] struct {
	Items            []T  `json:"items"`
	Page             int  `json:"page"`
	PerPage          int  `json:"perPage"`
	TotalPages       int  `json:"totalPages"`
	HasMultiplePages bool `json:"hasMultiplePages"`
}

// Paginate slices items into the requested page.
// Pages are 1-based. A page outside the valid range yields an empty
// Items slice rather than an error.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}

	totalPages := (len(items) + perPage - 1) / perPage

	result := Page[T]{
		Items:            []T{},
		Page:             page,
		PerPage:          perPage,
		TotalPages:       totalPages,
		HasMultiplePages: totalPages > 1,
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return result
	}

	end := start + perPage
	if end > len(items) {
		end = len(items)
	}

	result.Items = items[start:end]
	return result
}
