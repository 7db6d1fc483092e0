package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"officex/internal/core/id"
	"officex/internal/domain/customer"
)

const customersTable = "customers"

var customerColumns = []string{
	"id", "name", "email", "phone", "address", "status",
	"created_at", "updated_at", "created_by", "updated_by",
}

// CustomerRepo implements customer.Repository.
type CustomerRepo struct {
	txManager *TxManager
	builder   squirrel.StatementBuilderType
}

// NewCustomerRepo creates a new customer repository.
func NewCustomerRepo(txManager *TxManager) *CustomerRepo {
	return &CustomerRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns customers matching the filter, ordered by name.
func (r *CustomerRepo) List(ctx context.Context, filter customer.Filter) ([]customer.Customer, error) {
	q := r.builder.Select(customerColumns...).From(customersTable)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"phone": pattern},
		})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	q = q.OrderBy("name")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var customers []customer.Customer
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &customers, sql, args...); err != nil {
		return nil, fmt.Errorf("select customers: %w", err)
	}
	return customers, nil
}

// Get returns a customer by ID, nil when absent.
func (r *CustomerRepo) Get(ctx context.Context, customerID id.ID) (*customer.Customer, error) {
	sql, args, err := r.builder.Select(customerColumns...).From(customersTable).
		Where(squirrel.Eq{"id": customerID}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c customer.Customer
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Create inserts a new customer.
func (r *CustomerRepo) Create(ctx context.Context, c *customer.Customer) error {
	sql, args, err := r.builder.Insert(customersTable).
		Columns(customerColumns...).
		Values(
			c.ID, c.Name, c.Email, c.Phone, c.Address, string(c.Status),
			c.CreatedAt, c.UpdatedAt, c.CreatedBy, c.UpdatedBy,
		).ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

var _ customer.Repository = (*CustomerRepo)(nil)
