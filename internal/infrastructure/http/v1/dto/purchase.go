package dto

import (
	"officex/internal/core/apperror"
	"officex/internal/core/id"
	"officex/internal/core/types"
	"officex/internal/domain/purchase"
)

// OrderItemRequest is one line of a purchase order payload.
type OrderItemRequest struct {
	ProductID   string      `json:"productId" binding:"required"`
	ProductName string      `json:"productName" binding:"required"`
	Quantity    int64       `json:"quantity" binding:"required"`
	UnitCost    types.Money `json:"unitCost"`
	TotalCost   types.Money `json:"totalCost"`
}

// CreateOrderRequest is the payload for POST /purchases.
// Totals are submitted by the client and validated, not recomputed.
type CreateOrderRequest struct {
	SupplierName     string             `json:"supplierName" binding:"required"`
	InventoryPointID string             `json:"inventoryPointId" binding:"required"`
	Items            []OrderItemRequest `json:"items" binding:"required"`
	Subtotal         types.Money        `json:"subtotal"`
	Tax              types.Money        `json:"tax"`
	Total            types.Money        `json:"total"`
}

// ToOrder maps the request to a domain order.
func (r *CreateOrderRequest) ToOrder() (*purchase.Order, error) {
	pointID, err := id.Parse(r.InventoryPointID)
	if err != nil {
		return nil, apperror.NewValidation("invalid inventoryPointId format")
	}

	o := purchase.NewOrder(r.SupplierName, pointID)
	o.Subtotal = r.Subtotal
	o.Tax = r.Tax
	o.Total = r.Total

	o.Items = make([]purchase.Item, len(r.Items))
	for i, item := range r.Items {
		productID, err := id.Parse(item.ProductID)
		if err != nil {
			return nil, apperror.NewValidation("invalid productId format").
				WithDetail("line", i)
		}
		o.Items[i] = purchase.Item{
			ProductID:   productID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitCost:    item.UnitCost,
			TotalCost:   item.TotalCost,
		}
	}
	return o, nil
}
