package purchase

import (
	"context"

	"officex/internal/core/id"
)

// Filter narrows purchase order listings.
type Filter struct {
	// SupplierName matches suppliers by substring (ILIKE)
	SupplierName string

	// InventoryPointID restricts to one receiving location
	InventoryPointID *id.ID

	Limit  int
	Offset int
}

// Repository defines the interface for purchase order persistence.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Order, error)

	// Get returns an order with its items, nil when absent.
	Get(ctx context.Context, orderID id.ID) (*Order, error)

	// Create persists the order header and its items atomically.
	Create(ctx context.Context, o *Order) error
}
