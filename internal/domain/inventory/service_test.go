package inventory

import (
	"context"
	"errors"
	"testing"

	"officex/internal/core/id"
)

type mockRepo struct {
	records []StockRecord
	err     error

	lastFilter Filter
}

func (m *mockRepo) GetAll(ctx context.Context) ([]StockRecord, error) {
	return m.records, m.err
}

func (m *mockRepo) Find(ctx context.Context, filter Filter) ([]StockRecord, error) {
	m.lastFilter = filter
	return m.records, m.err
}

func TestGetAll(t *testing.T) {
	records := []StockRecord{
		{ProductID: id.New(), ProductName: "Stapler", Quantity: 12},
		{ProductID: id.New(), ProductName: "Paper A4", Quantity: 0},
	}
	svc := NewService(&mockRepo{records: records})

	got, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("want 2 records, got %d", len(got))
	}
}

func TestGetAll_ErrorPropagatesUnmodified(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := NewService(&mockRepo{err: repoErr})

	_, err := svc.GetAll(context.Background())
	if !errors.Is(err, repoErr) {
		t.Fatalf("want repo error propagated unmodified, got %v", err)
	}
	// GetAll must not wrap: callers inspect the raw persistence failure.
	if err.Error() != repoErr.Error() {
		t.Errorf("error was wrapped: %v", err)
	}
}

func TestFind_PassesFilter(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	locID := id.New()

	_, err := svc.Find(context.Background(), Filter{LocationID: &locID, ExcludeZero: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.LocationID == nil || *repo.lastFilter.LocationID != locID {
		t.Errorf("location filter not forwarded")
	}
	if !repo.lastFilter.ExcludeZero {
		t.Errorf("ExcludeZero not forwarded")
	}
}

func TestFind_WrapsError(t *testing.T) {
	repoErr := errors.New("boom")
	svc := NewService(&mockRepo{err: repoErr})

	_, err := svc.Find(context.Background(), Filter{})
	if !errors.Is(err, repoErr) {
		t.Fatalf("want wrapped repo error, got %v", err)
	}
}
