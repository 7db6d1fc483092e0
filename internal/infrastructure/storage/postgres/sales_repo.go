package postgres

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"officex/internal/domain/sales"
)

// SalesRepo implements sales.Repository.
type SalesRepo struct {
	txManager *TxManager
}

// NewSalesRepo creates a new sales repository.
func NewSalesRepo(txManager *TxManager) *SalesRepo {
	return &SalesRepo{txManager: txManager}
}

// ListRecent returns sales ordered by created_at descending.
func (r *SalesRepo) ListRecent(ctx context.Context, filter sales.Filter) ([]sales.Sale, error) {
	sql := `
		SELECT s.id, s.number, s.customer_id, COALESCE(c.name, 'Walk-in') AS customer_name,
		       s.location_id, s.total, s.created_at
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		ORDER BY s.created_at DESC
		LIMIT $1 OFFSET $2
	`

	var result []sales.Sale
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &result, sql, filter.Limit, filter.Offset); err != nil {
		return nil, fmt.Errorf("select sales: %w", err)
	}
	return result, nil
}

var _ sales.Repository = (*SalesRepo)(nil)
