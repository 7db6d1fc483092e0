package location

import (
	"context"
	"fmt"

	"officex/internal/core/apperror"
	"officex/internal/core/appctx"
	"officex/internal/core/id"
	"officex/internal/domain/user"
	"officex/pkg/logger"
)

// Auditor records entity change events. Implemented by the postgres audit
// store; failures are logged, never surfaced to the caller.
type Auditor interface {
	Record(ctx context.Context, entity string, entityID id.ID, action string, changes any)
}

// Service provides business logic for the location catalog.
type Service struct {
	repo    Repository
	auditor Auditor
}

// NewService creates a new location service.
func NewService(repo Repository, auditor Auditor) *Service {
	return &Service{repo: repo, auditor: auditor}
}

// actorRole resolves the acting role from context.
func actorRole(ctx context.Context) (user.Role, error) {
	role, ok := user.RoleFromID(appctx.GetActorRoleID(ctx))
	if !ok {
		return 0, apperror.NewUnauthorized("acting user role is unknown")
	}
	return role, nil
}

// ListVisible returns the locations the acting role is allowed to see,
// shaped into parent/children trees.
func (s *Service) ListVisible(ctx context.Context) ([]*Location, error) {
	role, err := actorRole(ctx)
	if err != nil {
		return nil, err
	}

	flat, err := s.repo.List(ctx, Filter{Types: AllowedTypes(role), ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return BuildTree(flat), nil
}

// Get returns a single location visible to the acting role.
func (s *Service) Get(ctx context.Context, locationID id.ID) (*Location, error) {
	role, err := actorRole(ctx)
	if err != nil {
		return nil, err
	}

	l, err := s.repo.Get(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	if l == nil {
		return nil, apperror.NewNotFound("location", locationID)
	}

	for _, t := range AllowedTypes(role) {
		if l.Type == t {
			return l, nil
		}
	}
	return nil, apperror.NewForbidden("location type not visible for role")
}

// Create validates the location against the acting role and persists it.
func (s *Service) Create(ctx context.Context, l *Location) error {
	role, err := actorRole(ctx)
	if err != nil {
		return err
	}

	if err := l.Validate(ctx, role); err != nil {
		return err
	}

	if l.ParentID != nil {
		parent, err := s.repo.Get(ctx, *l.ParentID)
		if err != nil {
			return fmt.Errorf("get parent location: %w", err)
		}
		if parent == nil {
			return apperror.NewValidation("parent location does not exist").
				WithDetail("parent_id", l.ParentID)
		}
	}

	l.CreatedBy = appctx.GetActorID(ctx)
	l.UpdatedBy = l.CreatedBy

	if err := s.repo.Create(ctx, l); err != nil {
		return fmt.Errorf("create location: %w", err)
	}

	if s.auditor != nil {
		s.auditor.Record(ctx, "location", l.ID, "create", l)
	}

	logger.Info(ctx, "location created",
		"location_id", l.ID,
		"type", l.Type,
	)
	return nil
}
