package inventory

import (
	"context"

	"officex/internal/core/id"
)

// Filter narrows stock queries.
type Filter struct {
	// LocationID restricts to one location when set
	LocationID *id.ID

	// ProductID restricts to one product when set
	ProductID *id.ID

	// ExcludeZero drops rows with zero quantity
	ExcludeZero bool
}

// Repository defines the interface for stock persistence.
// The interface exists so call sites can substitute a mock backend.
type Repository interface {
	// GetAll returns every aggregated stock row, unfiltered.
	GetAll(ctx context.Context) ([]StockRecord, error)

	// Find returns stock rows matching the filter.
	Find(ctx context.Context, filter Filter) ([]StockRecord, error)
}
