// Package purchase provides purchase orders against suppliers.
package purchase

import (
	"context"
	"time"

	"officex/internal/core/apperror"
	"officex/internal/core/id"
	"officex/internal/core/types"
)

// Item is one line of a purchase order.
type Item struct {
	ProductID   id.ID       `db:"product_id" json:"productId"`
	ProductName string      `db:"product_name" json:"productName"`
	Quantity    int64       `db:"quantity" json:"quantity"`
	UnitCost    types.Money `db:"unit_cost" json:"unitCost"`
	TotalCost   types.Money `db:"total_cost" json:"totalCost"`
}

// Validate checks line invariants: positive quantity and
// total_cost == quantity * unit_cost.
func (i *Item) Validate() error {
	if i.Quantity <= 0 {
		return apperror.NewValidation("item quantity must be positive").
			WithDetail("product_id", i.ProductID)
	}
	if i.UnitCost.IsNegative() {
		return apperror.NewValidation("item unit cost cannot be negative").
			WithDetail("product_id", i.ProductID)
	}
	expected := i.UnitCost.Mul(types.MoneyFromInt(i.Quantity))
	if !i.TotalCost.Equal(expected) {
		return apperror.NewValidation("item total does not match quantity * unit cost").
			WithDetail("product_id", i.ProductID).
			WithDetail("expected", expected.String()).
			WithDetail("got", i.TotalCost.String())
	}
	return nil
}

// Order is a purchase order placed with a supplier, received at an
// inventory point.
type Order struct {
	ID                 id.ID       `db:"id" json:"id"`
	Number             string      `db:"number" json:"number"`
	SupplierName       string      `db:"supplier_name" json:"supplierName"`
	InventoryPointID   id.ID       `db:"inventory_point_id" json:"inventoryPointId"`
	InventoryPointName string      `db:"inventory_point_name" json:"inventoryPointName"`
	Items              []Item      `db:"-" json:"items"`
	Subtotal           types.Money `db:"subtotal" json:"subtotal"`
	Tax                types.Money `db:"tax" json:"tax"`
	Total              types.Money `db:"total" json:"total"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	CreatedBy string    `db:"created_by" json:"createdBy,omitempty"`
	UpdatedBy string    `db:"updated_by" json:"updatedBy,omitempty"`
}

// NewOrder creates an order with required fields. Number is assigned by
// the service on create.
func NewOrder(supplierName string, inventoryPointID id.ID) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:               id.New(),
		SupplierName:     supplierName,
		InventoryPointID: inventoryPointID,
		Subtotal:         types.ZeroMoney(),
		Tax:              types.ZeroMoney(),
		Total:            types.ZeroMoney(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Validate checks order invariants: every line valid,
// subtotal == sum(items.total_cost) and total == subtotal + tax.
// Upstream totals are validated rather than trusted.
func (o *Order) Validate(ctx context.Context) error {
	if o.SupplierName == "" {
		return apperror.NewValidation("supplier name is required")
	}
	if id.IsNil(o.InventoryPointID) {
		return apperror.NewValidation("inventory point is required")
	}
	if len(o.Items) == 0 {
		return apperror.NewValidation("order must contain at least one item")
	}
	if o.Tax.IsNegative() {
		return apperror.NewValidation("tax cannot be negative")
	}

	sum := types.ZeroMoney()
	for idx := range o.Items {
		if err := o.Items[idx].Validate(); err != nil {
			if appErr, ok := apperror.AsAppError(err); ok {
				return appErr.WithDetail("line", idx)
			}
			return err
		}
		sum = sum.Add(o.Items[idx].TotalCost)
	}

	if !o.Subtotal.Equal(sum) {
		return apperror.NewValidation("subtotal does not match sum of item totals").
			WithDetail("expected", sum.String()).
			WithDetail("got", o.Subtotal.String())
	}
	if !o.Total.Equal(o.Subtotal.Add(o.Tax)) {
		return apperror.NewValidation("total does not match subtotal + tax").
			WithDetail("expected", o.Subtotal.Add(o.Tax).String()).
			WithDetail("got", o.Total.String())
	}
	return nil
}

// Recalculate recomputes line totals, subtotal and total from quantities
// and unit costs. Used when the caller supplies raw lines.
func (o *Order) Recalculate() {
	sum := types.ZeroMoney()
	for idx := range o.Items {
		item := &o.Items[idx]
		item.TotalCost = item.UnitCost.Mul(types.MoneyFromInt(item.Quantity))
		sum = sum.Add(item.TotalCost)
	}
	o.Subtotal = sum
	o.Total = o.Subtotal.Add(o.Tax)
}
