// Package user provides the user catalog and role-based permission rules.
package user

import (
	"context"
	"regexp"
	"time"

	"officex/internal/core/apperror"
	"officex/internal/core/id"
)

// Role is the named role tier a user belongs to.
// The wire representation stays numeric for compatibility with existing
// consumers (1 = manager, 2 = employee).
type Role int

const (
	RoleManager  Role = 1
	RoleEmployee Role = 2
)

// RoleFromID maps a numeric role ID to a Role.
// Returns false when the value is outside the known set.
func RoleFromID(roleID int) (Role, bool) {
	switch Role(roleID) {
	case RoleManager, RoleEmployee:
		return Role(roleID), true
	}
	return 0, false
}

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleManager:
		return "manager"
	case RoleEmployee:
		return "employee"
	}
	return "unknown"
}

// User represents a back-office account.
type User struct {
	ID id.ID `db:"id" json:"id"`

	// CoUserID is the company-issued user code shown in the UI
	CoUserID string `db:"co_user_id" json:"coUserId"`

	FirstName string  `db:"first_name" json:"firstName"`
	LastName  string  `db:"last_name" json:"lastName"`
	Email     *string `db:"email" json:"email,omitempty"`
	Phone     *string `db:"phone" json:"phone,omitempty"`

	Role Role `db:"role_id" json:"roleId"`

	// PasswordHash is the bcrypt hash, never serialized
	PasswordHash string `db:"password_hash" json:"-"`

	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewUser creates a user with required fields.
func NewUser(coUserID, firstName, lastName string, role Role) *User {
	now := time.Now().UTC()
	return &User{
		ID:        id.New(),
		CoUserID:  coUserID,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate checks user invariants.
func (u *User) Validate(ctx context.Context) error {
	if u.CoUserID == "" {
		return apperror.NewValidation("co_user_id is required")
	}
	if u.FirstName == "" || u.LastName == "" {
		return apperror.NewValidation("first and last name are required")
	}
	if _, ok := RoleFromID(int(u.Role)); !ok {
		return apperror.NewValidation("unknown role").
			WithDetail("field", "role_id").
			WithDetail("value", int(u.Role))
	}
	if u.Email != nil && !emailRe.MatchString(*u.Email) {
		return apperror.NewValidation("invalid email").
			WithDetail("field", "email")
	}
	return nil
}
