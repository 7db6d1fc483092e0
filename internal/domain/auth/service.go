package auth

import (
	"context"
	"fmt"

	"officex/internal/core/apperror"
	"officex/internal/core/appctx"
	"officex/internal/domain/user"
)

// Service handles credential checks and token issuance.
type Service struct {
	users *user.Service
	repo  user.Repository
	jwt   *JWTService
}

// NewService creates an auth service.
func NewService(users *user.Service, repo user.Repository, jwtSvc *JWTService) *Service {
	return &Service{users: users, repo: repo, jwt: jwtSvc}
}

// Login verifies credentials and returns a signed access token.
func (s *Service) Login(ctx context.Context, coUserID, password string) (string, *user.User, error) {
	u, err := s.repo.GetByCoUserID(ctx, coUserID)
	if err != nil {
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil || !u.IsActive || !s.users.CheckPassword(u, password) {
		// Single message for all credential failures.
		return "", nil, apperror.NewUnauthorized("invalid credentials")
	}

	token, err := s.jwt.Issue(appctx.Actor{
		UserID:   u.ID.String(),
		CoUserID: u.CoUserID,
		Name:     u.FirstName + " " + u.LastName,
		RoleID:   int(u.Role),
	})
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, u, nil
}
