// Package customer provides the customer catalog.
package customer

import (
	"context"
	"time"

	"officex/internal/core/apperror"
	"officex/internal/core/id"
)

// Status of a customer account.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusBlocked  Status = "blocked"
)

// Customer represents a sales counterparty.
type Customer struct {
	ID      id.ID   `db:"id" json:"id"`
	Name    string  `db:"name" json:"name"`
	Email   *string `db:"email" json:"email,omitempty"`
	Phone   *string `db:"phone" json:"phone,omitempty"`
	Address *string `db:"address" json:"address,omitempty"`
	Status  Status  `db:"status" json:"status"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	CreatedBy string    `db:"created_by" json:"createdBy,omitempty"`
	UpdatedBy string    `db:"updated_by" json:"updatedBy,omitempty"`
}

// NewCustomer creates a customer with required fields.
func NewCustomer(name string) *Customer {
	now := time.Now().UTC()
	return &Customer{
		ID:        id.New(),
		Name:      name,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks customer invariants.
func (c *Customer) Validate(ctx context.Context) error {
	if len(c.Name) < 2 {
		return apperror.NewValidation("customer name too short").
			WithDetail("field", "name")
	}
	switch c.Status {
	case StatusActive, StatusInactive, StatusBlocked:
	default:
		return apperror.NewValidation("invalid customer status").
			WithDetail("value", string(c.Status))
	}
	return nil
}
