package sales

import (
	"context"
	"fmt"
)

// Service provides sales history retrieval with the strict error policy:
// persistence failures surface to the caller.
type Service struct {
	repo Repository
}

// NewService creates a new sales service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListRecent returns recent sales, most recent first.
func (s *Service) ListRecent(ctx context.Context, filter Filter) ([]Sale, error) {
	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	sales, err := s.repo.ListRecent(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}
