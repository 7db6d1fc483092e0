package user

import (
	"context"

	"officex/internal/core/id"
)

// Filter narrows user listings.
type Filter struct {
	// Role filters by role when set
	Role *Role

	// ActiveOnly excludes deactivated accounts
	ActiveOnly bool
}

// Repository defines the interface for user persistence.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]User, error)
	Get(ctx context.Context, userID id.ID) (*User, error)
	GetByCoUserID(ctx context.Context, coUserID string) (*User, error)
	Create(ctx context.Context, u *User) error
}
