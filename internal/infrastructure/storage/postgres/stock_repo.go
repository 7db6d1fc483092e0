package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"officex/internal/domain/inventory"
)

// stockView is the aggregated stock view maintained by the persistence
// layer (movement triggers roll quantities up per product and location).
const stockView = "inventory_stock"

var stockColumns = []string{
	"product_id", "product_name", "location_id", "location_name",
	"quantity", "updated_at",
}

// StockRepo implements inventory.Repository.
type StockRepo struct {
	txManager *TxManager
	builder   squirrel.StatementBuilderType
}

// NewStockRepo creates a new stock repository.
func NewStockRepo(txManager *TxManager) *StockRepo {
	return &StockRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll returns every aggregated stock row.
func (r *StockRepo) GetAll(ctx context.Context) ([]inventory.StockRecord, error) {
	return r.Find(ctx, inventory.Filter{})
}

// Find returns stock rows matching the filter.
func (r *StockRepo) Find(ctx context.Context, filter inventory.Filter) ([]inventory.StockRecord, error) {
	q := r.builder.Select(stockColumns...).From(stockView)

	if filter.LocationID != nil {
		q = q.Where(squirrel.Eq{"location_id": *filter.LocationID})
	}
	if filter.ProductID != nil {
		q = q.Where(squirrel.Eq{"product_id": *filter.ProductID})
	}
	if filter.ExcludeZero {
		q = q.Where(squirrel.NotEq{"quantity": int64(0)})
	}

	q = q.OrderBy("location_name", "product_name")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var records []inventory.StockRecord
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &records, sql, args...); err != nil {
		return nil, fmt.Errorf("select stock: %w", err)
	}
	return records, nil
}

var _ inventory.Repository = (*StockRepo)(nil)
