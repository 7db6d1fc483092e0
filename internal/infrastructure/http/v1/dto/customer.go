package dto

import "officex/internal/domain/customer"

// CreateCustomerRequest is the payload for POST /customers.
type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ToCustomer maps the request to a domain customer.
func (r *CreateCustomerRequest) ToCustomer() *customer.Customer {
	c := customer.NewCustomer(r.Name)
	c.Email = r.Email
	c.Phone = r.Phone
	c.Address = r.Address
	return c
}
