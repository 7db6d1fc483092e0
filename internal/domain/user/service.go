package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"officex/internal/core/apperror"
	"officex/internal/core/id"
)

// Service provides business logic for user accounts.
type Service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns users, optionally filtered by role.
func (s *Service) List(ctx context.Context, filter Filter) ([]User, error) {
	users, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns a single user by ID.
func (s *Service) Get(ctx context.Context, userID id.ID) (*User, error) {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, apperror.NewNotFound("user", userID)
	}
	return u, nil
}

// Create validates, hashes the password and persists a new user.
func (s *Service) Create(ctx context.Context, u *User, password string) error {
	if err := u.Validate(ctx); err != nil {
		return err
	}
	if len(password) < 8 {
		return apperror.NewValidation("password must be at least 8 characters")
	}

	existing, err := s.repo.GetByCoUserID(ctx, u.CoUserID)
	if err != nil {
		return fmt.Errorf("check co_user_id: %w", err)
	}
	if existing != nil {
		return apperror.NewDuplicate("user", "co_user_id", u.CoUserID)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = string(hash)

	if err := s.repo.Create(ctx, u); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// CheckPassword compares a candidate password against the stored hash.
func (s *Service) CheckPassword(u *User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
