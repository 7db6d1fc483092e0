// Package inventory provides the aggregated stock view over locations.
package inventory

import (
	"time"

	"officex/internal/core/id"
)

// StockRecord is an aggregated inventory-quantity row for a product at a
// location. Rows are produced by the persistence layer from movement data.
type StockRecord struct {
	ProductID    id.ID     `db:"product_id" json:"productId"`
	ProductName  string    `db:"product_name" json:"productName"`
	LocationID   id.ID     `db:"location_id" json:"locationId"`
	LocationName string    `db:"location_name" json:"locationName"`
	Quantity     int64     `db:"quantity" json:"quantity"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
