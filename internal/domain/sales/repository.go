package sales

import "context"

// Filter narrows sales history queries.
type Filter struct {
	Limit  int
	Offset int
}

// Repository defines the interface for sales persistence.
type Repository interface {
	// ListRecent returns sales ordered by created_at descending.
	// Most recent first is the documented ordering for history views.
	ListRecent(ctx context.Context, filter Filter) ([]Sale, error)
}
