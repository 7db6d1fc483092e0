// Package location provides the location catalog (stores, branches and
// inventory points) and the role-based rules that gate it.
package location

import (
	"context"
	"time"

	"officex/internal/core/apperror"
	"officex/internal/core/id"
	"officex/internal/domain/user"
)

// Type defines the kind of location.
type Type string

const (
	TypeMainStore      Type = "MAIN_STORE"
	TypeBranch         Type = "BRANCH"
	TypeInventoryPoint Type = "INVENTORY_POINT"
)

// Location represents a node in the location tree.
// MainStore sits at the root; branches and inventory points may hang off
// a parent when a manager assigns one.
type Location struct {
	ID       id.ID   `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Type     Type    `db:"type" json:"type"`
	ParentID *id.ID  `db:"parent_id" json:"parentId,omitempty"`
	Address  *string `db:"address" json:"address,omitempty"`
	IsActive bool    `db:"is_active" json:"isActive"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	CreatedBy string    `db:"created_by" json:"createdBy,omitempty"`
	UpdatedBy string    `db:"updated_by" json:"updatedBy,omitempty"`

	// Children is populated when shaping the tree, not persisted directly
	Children []*Location `db:"-" json:"children,omitempty"`
}

// NewLocation creates a location with required fields.
func NewLocation(name string, locType Type) *Location {
	now := time.Now().UTC()
	return &Location{
		ID:        id.New(),
		Name:      name,
		Type:      locType,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks location invariants for the acting role.
func (l *Location) Validate(ctx context.Context, actorRole user.Role) error {
	if l.Name == "" {
		return apperror.NewValidation("location name is required")
	}
	if !isValidType(l.Type) {
		return apperror.NewValidation("invalid location type").
			WithDetail("field", "type").
			WithDetail("value", string(l.Type))
	}
	if l.ParentID != nil {
		if !CanSelectParent(actorRole, l.Type) {
			if l.Type == TypeMainStore {
				return apperror.NewValidation("main store cannot have a parent")
			}
			return apperror.NewForbidden("only managers may assign a parent location")
		}
	}
	return nil
}

func isValidType(t Type) bool {
	switch t {
	case TypeMainStore, TypeBranch, TypeInventoryPoint:
		return true
	}
	return false
}

// AllowedTypes returns the location types visible to a role.
// Managers see the whole tree; employees only inventory points.
func AllowedTypes(role user.Role) []Type {
	switch role {
	case user.RoleManager:
		return []Type{TypeMainStore, TypeBranch, TypeInventoryPoint}
	case user.RoleEmployee:
		return []Type{TypeInventoryPoint}
	}
	return nil
}

// CanSelectParent reports whether a role may assign a parent to a location
// of the given type. MainStore has no parent by construction.
func CanSelectParent(role user.Role, locType Type) bool {
	if role != user.RoleManager {
		return false
	}
	return locType == TypeBranch || locType == TypeInventoryPoint
}

// BuildTree shapes a flat list into parent/children trees.
// Nodes whose parent is not in the list become roots.
func BuildTree(flat []*Location) []*Location {
	byID := make(map[id.ID]*Location, len(flat))
	for _, l := range flat {
		byID[l.ID] = l
	}

	var roots []*Location
	for _, l := range flat {
		if l.ParentID != nil {
			if parent, ok := byID[*l.ParentID]; ok {
				parent.Children = append(parent.Children, l)
				continue
			}
		}
		roots = append(roots, l)
	}
	return roots
}
