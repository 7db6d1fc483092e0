package customer

import (
	"context"
	"fmt"

	"officex/internal/core/apperror"
	"officex/internal/core/appctx"
	"officex/internal/core/id"
)

// Service provides business logic for the customer catalog.
type Service struct {
	repo Repository
}

// NewService creates a new customer service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns customers matching the filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]Customer, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	customers, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// Get returns a single customer by ID.
func (s *Service) Get(ctx context.Context, customerID id.ID) (*Customer, error) {
	c, err := s.repo.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if c == nil {
		return nil, apperror.NewNotFound("customer", customerID)
	}
	return c, nil
}

// Create validates and persists a new customer.
func (s *Service) Create(ctx context.Context, c *Customer) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}

	c.CreatedBy = appctx.GetActorID(ctx)
	c.UpdatedBy = c.CreatedBy

	if err := s.repo.Create(ctx, c); err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}
