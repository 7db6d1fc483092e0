package purchase

import (
	"context"
	"testing"

	"officex/internal/core/apperror"
	"officex/internal/core/id"
	"officex/internal/core/types"
)

func validOrder() *Order {
	o := NewOrder("Office Supplies Ltd", id.New())
	o.Items = []Item{
		{ProductID: id.New(), ProductName: "Stapler", Quantity: 3, UnitCost: types.MustMoney("4.50")},
		{ProductID: id.New(), ProductName: "Paper A4", Quantity: 10, UnitCost: types.MustMoney("2.25")},
	}
	o.Tax = types.MustMoney("3.60")
	o.Recalculate()
	return o
}

func TestItemValidate(t *testing.T) {
	t.Run("total must equal quantity times unit cost", func(t *testing.T) {
		item := Item{
			ProductID: id.New(),
			Quantity:  3,
			UnitCost:  types.MustMoney("4.50"),
			TotalCost: types.MustMoney("13.00"), // should be 13.50
		}
		if err := item.Validate(); !apperror.IsValidation(err) {
			t.Errorf("want validation error, got %v", err)
		}

		item.TotalCost = types.MustMoney("13.50")
		if err := item.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("quantity beyond float precision stays exact", func(t *testing.T) {
		// 2^53+1 is not representable as a float64; the invariant math
		// must not round it.
		item := Item{
			ProductID: id.New(),
			Quantity:  9007199254740993,
			UnitCost:  types.MustMoney("1"),
			TotalCost: types.MustMoney("9007199254740993"),
		}
		if err := item.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}

		item.TotalCost = types.MustMoney("9007199254740992")
		if err := item.Validate(); !apperror.IsValidation(err) {
			t.Errorf("want validation error on off-by-one total, got %v", err)
		}
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		item := Item{ProductID: id.New(), Quantity: 0, UnitCost: types.MustMoney("1.00")}
		if err := item.Validate(); !apperror.IsValidation(err) {
			t.Errorf("want validation error, got %v", err)
		}
	})
}

func TestOrderValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("recalculated order is valid", func(t *testing.T) {
		o := validOrder()
		if err := o.Validate(ctx); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if !o.Subtotal.Equal(types.MustMoney("36.00")) {
			t.Errorf("want subtotal 36.00, got %s", o.Subtotal)
		}
		if !o.Total.Equal(types.MustMoney("39.60")) {
			t.Errorf("want total 39.60, got %s", o.Total)
		}
	})

	t.Run("subtotal drift rejected", func(t *testing.T) {
		o := validOrder()
		o.Subtotal = o.Subtotal.Add(types.MustMoney("0.01"))
		if err := o.Validate(ctx); !apperror.IsValidation(err) {
			t.Errorf("want validation error, got %v", err)
		}
	})

	t.Run("total drift rejected", func(t *testing.T) {
		o := validOrder()
		o.Total = o.Subtotal // forgot tax
		if err := o.Validate(ctx); !apperror.IsValidation(err) {
			t.Errorf("want validation error, got %v", err)
		}
	})

	t.Run("empty order rejected", func(t *testing.T) {
		o := NewOrder("Office Supplies Ltd", id.New())
		if err := o.Validate(ctx); !apperror.IsValidation(err) {
			t.Errorf("want validation error, got %v", err)
		}
	})

	t.Run("bad line reported with index", func(t *testing.T) {
		o := validOrder()
		o.Items[1].TotalCost = types.MustMoney("999.99")
		err := o.Validate(ctx)
		appErr, ok := apperror.AsAppError(err)
		if !ok {
			t.Fatalf("want AppError, got %v", err)
		}
		if appErr.Details["line"] != 1 {
			t.Errorf("want line detail 1, got %v", appErr.Details["line"])
		}
	})
}
