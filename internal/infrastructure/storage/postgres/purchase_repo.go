package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"officex/internal/core/id"
	"officex/internal/domain/purchase"
)

const (
	purchaseOrdersTable = "purchase_orders"
	purchaseItemsTable  = "purchase_items"
)

var purchaseOrderColumns = []string{
	"id", "number", "supplier_name", "inventory_point_id", "inventory_point_name",
	"subtotal", "tax", "total", "created_at", "updated_at", "created_by", "updated_by",
}

// PurchaseRepo implements purchase.Repository.
type PurchaseRepo struct {
	txManager *TxManager
	builder   squirrel.StatementBuilderType
}

// NewPurchaseRepo creates a new purchase order repository.
func NewPurchaseRepo(txManager *TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns order headers matching the filter, most recent first.
// Items are not loaded for listings.
func (r *PurchaseRepo) List(ctx context.Context, filter purchase.Filter) ([]purchase.Order, error) {
	q := r.builder.Select(purchaseOrderColumns...).From(purchaseOrdersTable)

	if filter.SupplierName != "" {
		q = q.Where(squirrel.ILike{"supplier_name": "%" + filter.SupplierName + "%"})
	}
	if filter.InventoryPointID != nil {
		q = q.Where(squirrel.Eq{"inventory_point_id": *filter.InventoryPointID})
	}

	q = q.OrderBy("created_at DESC")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var orders []purchase.Order
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &orders, sql, args...); err != nil {
		return nil, fmt.Errorf("select purchase orders: %w", err)
	}
	return orders, nil
}

// Get returns an order with its items, nil when absent.
func (r *PurchaseRepo) Get(ctx context.Context, orderID id.ID) (*purchase.Order, error) {
	sql, args, err := r.builder.Select(purchaseOrderColumns...).From(purchaseOrdersTable).
		Where(squirrel.Eq{"id": orderID}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var o purchase.Order
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &o, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}

	itemsSQL, itemsArgs, err := r.builder.
		Select("product_id", "product_name", "quantity", "unit_cost", "total_cost").
		From(purchaseItemsTable).
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("line_no").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build items query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &o.Items, itemsSQL, itemsArgs...); err != nil {
		return nil, fmt.Errorf("select purchase items: %w", err)
	}
	return &o, nil
}

// Create persists the order header and its items within one transaction.
func (r *PurchaseRepo) Create(ctx context.Context, o *purchase.Order) error {
	return r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		querier := r.txManager.GetQuerier(ctx)

		headerSQL, headerArgs, err := r.builder.Insert(purchaseOrdersTable).
			Columns(purchaseOrderColumns...).
			Values(
				o.ID, o.Number, o.SupplierName, o.InventoryPointID, o.InventoryPointName,
				o.Subtotal, o.Tax, o.Total, o.CreatedAt, o.UpdatedAt, o.CreatedBy, o.UpdatedBy,
			).ToSql()
		if err != nil {
			return fmt.Errorf("build header insert: %w", err)
		}
		if _, err := querier.Exec(ctx, headerSQL, headerArgs...); err != nil {
			return fmt.Errorf("insert purchase order: %w", err)
		}

		itemsQ := r.builder.Insert(purchaseItemsTable).
			Columns("order_id", "line_no", "product_id", "product_name", "quantity", "unit_cost", "total_cost")
		for lineNo, item := range o.Items {
			itemsQ = itemsQ.Values(
				o.ID, lineNo, item.ProductID, item.ProductName,
				item.Quantity, item.UnitCost, item.TotalCost,
			)
		}

		itemsSQL, itemsArgs, err := itemsQ.ToSql()
		if err != nil {
			return fmt.Errorf("build items insert: %w", err)
		}
		if _, err := querier.Exec(ctx, itemsSQL, itemsArgs...); err != nil {
			return fmt.Errorf("insert purchase items: %w", err)
		}
		return nil
	})
}

var _ purchase.Repository = (*PurchaseRepo)(nil)
