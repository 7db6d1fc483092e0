package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"officex/internal/core/id"
	"officex/internal/domain/location"
)

const locationsTable = "locations"

var locationColumns = []string{
	"id", "name", "type", "parent_id", "address", "is_active",
	"created_at", "updated_at", "created_by", "updated_by",
}

// LocationRepo implements location.Repository.
type LocationRepo struct {
	txManager *TxManager
	builder   squirrel.StatementBuilderType
}

// NewLocationRepo creates a new location repository.
func NewLocationRepo(txManager *TxManager) *LocationRepo {
	return &LocationRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns locations matching the filter, ordered by name.
func (r *LocationRepo) List(ctx context.Context, filter location.Filter) ([]*location.Location, error) {
	q := r.builder.Select(locationColumns...).From(locationsTable)

	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		q = q.Where(squirrel.Eq{"type": types})
	}
	if filter.ActiveOnly {
		q = q.Where(squirrel.Eq{"is_active": true})
	}
	q = q.OrderBy("name")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var locations []*location.Location
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &locations, sql, args...); err != nil {
		return nil, fmt.Errorf("select locations: %w", err)
	}
	return locations, nil
}

// Get returns a location by ID, nil when absent.
func (r *LocationRepo) Get(ctx context.Context, locationID id.ID) (*location.Location, error) {
	sql, args, err := r.builder.Select(locationColumns...).From(locationsTable).
		Where(squirrel.Eq{"id": locationID}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var l location.Location
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &l, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// Create inserts a new location.
func (r *LocationRepo) Create(ctx context.Context, l *location.Location) error {
	sql, args, err := r.builder.Insert(locationsTable).
		Columns(locationColumns...).
		Values(
			l.ID, l.Name, string(l.Type), l.ParentID, l.Address, l.IsActive,
			l.CreatedAt, l.UpdatedAt, l.CreatedBy, l.UpdatedBy,
		).ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

var _ location.Repository = (*LocationRepo)(nil)
