package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"officex/internal/core/id"
	"officex/internal/domain/user"
)

const usersTable = "users"

var userColumns = []string{
	"id", "co_user_id", "first_name", "last_name", "email", "phone",
	"role_id", "password_hash", "is_active", "created_at", "updated_at",
}

// UserRepo implements user.Repository.
type UserRepo struct {
	txManager *TxManager
	builder   squirrel.StatementBuilderType
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txManager *TxManager) *UserRepo {
	return &UserRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns users matching the filter, ordered by co_user_id.
func (r *UserRepo) List(ctx context.Context, filter user.Filter) ([]user.User, error) {
	q := r.builder.Select(userColumns...).From(usersTable)

	if filter.Role != nil {
		q = q.Where(squirrel.Eq{"role_id": int(*filter.Role)})
	}
	if filter.ActiveOnly {
		q = q.Where(squirrel.Eq{"is_active": true})
	}
	q = q.OrderBy("co_user_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var users []user.User
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &users, sql, args...); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	return users, nil
}

// Get returns a user by ID, nil when absent.
func (r *UserRepo) Get(ctx context.Context, userID id.ID) (*user.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": userID})
}

// GetByCoUserID returns a user by company code, nil when absent.
func (r *UserRepo) GetByCoUserID(ctx context.Context, coUserID string) (*user.User, error) {
	return r.getOne(ctx, squirrel.Eq{"co_user_id": coUserID})
}

func (r *UserRepo) getOne(ctx context.Context, where squirrel.Eq) (*user.User, error) {
	sql, args, err := r.builder.Select(userColumns...).From(usersTable).
		Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u user.User
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &u, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, u *user.User) error {
	sql, args, err := r.builder.Insert(usersTable).
		Columns(userColumns...).
		Values(
			u.ID, u.CoUserID, u.FirstName, u.LastName, u.Email, u.Phone,
			int(u.Role), u.PasswordHash, u.IsActive, u.CreatedAt, u.UpdatedAt,
		).ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

var _ user.Repository = (*UserRepo)(nil)
