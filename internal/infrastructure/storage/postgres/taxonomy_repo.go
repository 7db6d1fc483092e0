package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"officex/internal/domain/taxonomy"
)

const (
	categoriesTable = "categories"
	tagsTable       = "tags"
)

// TaxonomyRepo implements taxonomy.Repository.
type TaxonomyRepo struct {
	txManager *TxManager
	builder   squirrel.StatementBuilderType
}

// NewTaxonomyRepo creates a new taxonomy repository.
func NewTaxonomyRepo(txManager *TxManager) *TaxonomyRepo {
	return &TaxonomyRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListCategories returns all categories ordered by name.
func (r *TaxonomyRepo) ListCategories(ctx context.Context) ([]taxonomy.Category, error) {
	sql, args, err := r.builder.Select("id", "name", "created_at").
		From(categoriesTable).OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var categories []taxonomy.Category
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &categories, sql, args...); err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	return categories, nil
}

// CreateCategory inserts a new category.
func (r *TaxonomyRepo) CreateCategory(ctx context.Context, c *taxonomy.Category) error {
	return r.insertNamed(ctx, categoriesTable, c.ID, c.Name, c.CreatedAt)
}

// CategoryExists reports whether a category with the name exists.
func (r *TaxonomyRepo) CategoryExists(ctx context.Context, name string) (bool, error) {
	return r.nameExists(ctx, categoriesTable, name)
}

// ListTags returns all tags ordered by name.
func (r *TaxonomyRepo) ListTags(ctx context.Context) ([]taxonomy.Tag, error) {
	sql, args, err := r.builder.Select("id", "name", "created_at").
		From(tagsTable).OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var tags []taxonomy.Tag
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &tags, sql, args...); err != nil {
		return nil, fmt.Errorf("select tags: %w", err)
	}
	return tags, nil
}

// CreateTag inserts a new tag.
func (r *TaxonomyRepo) CreateTag(ctx context.Context, t *taxonomy.Tag) error {
	return r.insertNamed(ctx, tagsTable, t.ID, t.Name, t.CreatedAt)
}

// TagExists reports whether a tag with the name exists.
func (r *TaxonomyRepo) TagExists(ctx context.Context, name string) (bool, error) {
	return r.nameExists(ctx, tagsTable, name)
}

func (r *TaxonomyRepo) insertNamed(ctx context.Context, table string, args ...any) error {
	sql, sqlArgs, err := r.builder.Insert(table).
		Columns("id", "name", "created_at").Values(args...).ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, sqlArgs...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

func (r *TaxonomyRepo) nameExists(ctx context.Context, table, name string) (bool, error) {
	sql, args, err := r.builder.Select("1").From(table).
		Where(squirrel.Eq{"name": name}).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &one, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check %s name: %w", table, err)
	}
	return true, nil
}

var _ taxonomy.Repository = (*TaxonomyRepo)(nil)
