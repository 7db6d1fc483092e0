package sales

import (
	"context"
	"testing"
)

type mockSalesRepo struct {
	gotFilter Filter
	sales     []Sale
}

func (m *mockSalesRepo) ListRecent(ctx context.Context, filter Filter) ([]Sale, error) {
	m.gotFilter = filter
	return m.sales, nil
}

func TestListRecent_ClampsFilter(t *testing.T) {
	tests := []struct {
		name       string
		in         Filter
		wantLimit  int
		wantOffset int
	}{
		{"defaults applied", Filter{}, 100, 0},
		{"negative offset clamped", Filter{Limit: 20, Offset: -5}, 20, 0},
		{"oversized limit reset", Filter{Limit: 10000, Offset: 40}, 100, 40},
		{"valid filter untouched", Filter{Limit: 50, Offset: 10}, 50, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockSalesRepo{}
			if _, err := NewService(repo).ListRecent(context.Background(), tt.in); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.gotFilter.Limit != tt.wantLimit {
				t.Errorf("want limit %d, got %d", tt.wantLimit, repo.gotFilter.Limit)
			}
			if repo.gotFilter.Offset != tt.wantOffset {
				t.Errorf("want offset %d, got %d", tt.wantOffset, repo.gotFilter.Offset)
			}
		})
	}
}
