package location

import (
	"context"

	"officex/internal/core/id"
)

// Filter narrows location listings.
type Filter struct {
	// Types restricts results to the given location types
	Types []Type

	// ActiveOnly excludes deactivated locations
	ActiveOnly bool
}

// Repository defines the interface for location persistence.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]*Location, error)
	Get(ctx context.Context, locationID id.ID) (*Location, error)
	Create(ctx context.Context, l *Location) error
}
