package customer

import (
	"context"

	"officex/internal/core/id"
)

// Filter narrows customer listings.
type Filter struct {
	// Search matches against name, email and phone (ILIKE)
	Search string

	// Status filters by account status when set
	Status *Status

	Limit  int
	Offset int
}

// Repository defines the interface for customer persistence.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Customer, error)
	Get(ctx context.Context, customerID id.ID) (*Customer, error)
	Create(ctx context.Context, c *Customer) error
}
