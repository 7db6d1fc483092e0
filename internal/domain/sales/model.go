// Package sales provides read access to sales history.
package sales

import (
	"time"

	"officex/internal/core/id"
	"officex/internal/core/types"
)

// Sale is one completed sale as shown in history views.
type Sale struct {
	ID           id.ID       `db:"id" json:"id"`
	Number       string      `db:"number" json:"number"`
	CustomerID   *id.ID      `db:"customer_id" json:"customerId,omitempty"`
	CustomerName string      `db:"customer_name" json:"customerName"`
	LocationID   id.ID       `db:"location_id" json:"locationId"`
	Total        types.Money `db:"total" json:"total"`
	CreatedAt    time.Time   `db:"created_at" json:"createdAt"`
}
