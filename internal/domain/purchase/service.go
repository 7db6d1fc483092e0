package purchase

import (
	"context"
	"fmt"
	"time"

	"officex/internal/core/apperror"
	"officex/internal/core/appctx"
	"officex/internal/core/id"
	"officex/internal/core/numerator"
	"officex/internal/domain/location"
	"officex/pkg/logger"
)

// Service provides business logic for purchase orders.
type Service struct {
	repo      Repository
	locations location.Repository
	numerator numerator.Generator
	auditor   location.Auditor
}

// NewService creates a new purchase service.
func NewService(repo Repository, locations location.Repository, gen numerator.Generator, auditor location.Auditor) *Service {
	return &Service{
		repo:      repo,
		locations: locations,
		numerator: gen,
		auditor:   auditor,
	}
}

// List returns purchase orders matching the filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]Order, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	return orders, nil
}

// Get returns a single purchase order with items.
func (s *Service) Get(ctx context.Context, orderID id.ID) (*Order, error) {
	o, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if o == nil {
		return nil, apperror.NewNotFound("purchase order", orderID)
	}
	return o, nil
}

// Create validates the order, resolves the receiving inventory point,
// assigns a sequential number and persists the order.
func (s *Service) Create(ctx context.Context, o *Order) error {
	if err := o.Validate(ctx); err != nil {
		return err
	}

	point, err := s.locations.Get(ctx, o.InventoryPointID)
	if err != nil {
		return fmt.Errorf("get inventory point: %w", err)
	}
	if point == nil {
		return apperror.NewValidation("inventory point does not exist").
			WithDetail("inventory_point_id", o.InventoryPointID)
	}
	if point.Type != location.TypeInventoryPoint {
		return apperror.NewValidation("purchases must be received at an inventory point").
			WithDetail("location_type", string(point.Type))
	}
	o.InventoryPointName = point.Name

	if o.Number == "" {
		number, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("PO"), time.Now())
		if err != nil {
			return fmt.Errorf("generate order number: %w", err)
		}
		o.Number = number
	}

	o.CreatedBy = appctx.GetActorID(ctx)
	o.UpdatedBy = o.CreatedBy

	if err := s.repo.Create(ctx, o); err != nil {
		return fmt.Errorf("create purchase order: %w", err)
	}

	if s.auditor != nil {
		s.auditor.Record(ctx, "purchase_order", o.ID, "create", o)
	}

	logger.Info(ctx, "purchase order created",
		"order_id", o.ID,
		"number", o.Number,
		"supplier", o.SupplierName,
		"total", o.Total.String(),
	)
	return nil
}
