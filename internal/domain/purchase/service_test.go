package purchase

import (
	"context"
	"testing"
	"time"

	"officex/internal/core/apperror"
	"officex/internal/core/id"
	"officex/internal/core/numerator"
	"officex/internal/domain/location"
)

type mockOrderRepo struct {
	created *Order
}

func (m *mockOrderRepo) List(ctx context.Context, filter Filter) ([]Order, error) { return nil, nil }
func (m *mockOrderRepo) Get(ctx context.Context, orderID id.ID) (*Order, error)  { return nil, nil }
func (m *mockOrderRepo) Create(ctx context.Context, o *Order) error {
	m.created = o
	return nil
}

type mockLocationRepo struct {
	byID map[id.ID]*location.Location
}

func (m *mockLocationRepo) List(ctx context.Context, filter location.Filter) ([]*location.Location, error) {
	return nil, nil
}
func (m *mockLocationRepo) Get(ctx context.Context, locationID id.ID) (*location.Location, error) {
	return m.byID[locationID], nil
}
func (m *mockLocationRepo) Create(ctx context.Context, l *location.Location) error { return nil }

func TestCreate_AssignsNumberAndPointName(t *testing.T) {
	point := location.NewLocation("Back Room", location.TypeInventoryPoint)
	repo := &mockOrderRepo{}
	svc := NewService(repo,
		&mockLocationRepo{byID: map[id.ID]*location.Location{point.ID: point}},
		&numerator.MockGenerator{GetNextNumberFunc: func(ctx context.Context, cfg numerator.Config, period time.Time) (string, error) {
			return "PO-2026-00042", nil
		}},
		nil,
	)

	o := validOrder()
	o.InventoryPointID = point.ID
	if err := svc.Create(context.Background(), o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Number != "PO-2026-00042" {
		t.Errorf("number not assigned, got %q", o.Number)
	}
	if o.InventoryPointName != "Back Room" {
		t.Errorf("inventory point name not resolved, got %q", o.InventoryPointName)
	}
	if repo.created != o {
		t.Error("order not persisted")
	}
}

func TestCreate_RejectsNonInventoryPoint(t *testing.T) {
	branch := location.NewLocation("North Branch", location.TypeBranch)
	svc := NewService(&mockOrderRepo{},
		&mockLocationRepo{byID: map[id.ID]*location.Location{branch.ID: branch}},
		&numerator.MockGenerator{}, nil)

	o := validOrder()
	o.InventoryPointID = branch.ID
	if err := svc.Create(context.Background(), o); !apperror.IsValidation(err) {
		t.Errorf("want validation error, got %v", err)
	}
}

func TestCreate_RejectsUnknownPoint(t *testing.T) {
	svc := NewService(&mockOrderRepo{}, &mockLocationRepo{byID: map[id.ID]*location.Location{}},
		&numerator.MockGenerator{}, nil)

	o := validOrder()
	if err := svc.Create(context.Background(), o); !apperror.IsValidation(err) {
		t.Errorf("want validation error, got %v", err)
	}
}
