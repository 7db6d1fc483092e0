package inventory

import (
	"context"
	"fmt"
)

// Service provides read access to aggregated stock.
type Service struct {
	repo Repository
}

// NewService creates a new inventory stock service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetAll returns every aggregated stock row.
// Persistence errors propagate to the caller unmodified; the HTTP layer
// maps them to 500.
func (s *Service) GetAll(ctx context.Context) ([]StockRecord, error) {
	return s.repo.GetAll(ctx)
}

// Find returns stock rows matching the filter. The GetAll contract is
// unchanged by this extension.
func (s *Service) Find(ctx context.Context, filter Filter) ([]StockRecord, error) {
	records, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find stock: %w", err)
	}
	return records, nil
}
