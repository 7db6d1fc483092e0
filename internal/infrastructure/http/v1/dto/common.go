// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// IDResponse returns a created entity ID.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse is a generic success acknowledgement.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ListResponse wraps list results.
type ListResponse struct {
	Items      any `json:"items"`
	TotalCount int `json:"totalCount"`
}

// NewListResponse builds a ListResponse for a slice of n items.
func NewListResponse(items any, n int) ListResponse {
	return ListResponse{Items: items, TotalCount: n}
}
