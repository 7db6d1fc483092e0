package dto

import (
	"officex/internal/core/apperror"
	"officex/internal/core/id"
	"officex/internal/domain/location"
)

// CreateLocationRequest is the payload for POST /locations.
type CreateLocationRequest struct {
	Name     string  `json:"name" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	ParentID *string `json:"parentId"`
	Address  *string `json:"address"`
}

// ToLocation maps the request to a domain location.
func (r *CreateLocationRequest) ToLocation() (*location.Location, error) {
	l := location.NewLocation(r.Name, location.Type(r.Type))
	l.Address = r.Address

	if r.ParentID != nil && *r.ParentID != "" {
		parsed, err := id.Parse(*r.ParentID)
		if err != nil {
			return nil, apperror.NewValidation("invalid parentId format")
		}
		l.ParentID = &parsed
	}
	return l, nil
}
