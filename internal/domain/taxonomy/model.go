package taxonomy

import (
	"time"

	"officex/internal/core/id"
)

// Category groups products for navigation and reporting.
type Category struct {
	ID        id.ID     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Tag is a free-form label attached to products.
type Tag struct {
	ID        id.ID     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewCategory creates a category with a generated ID.
func NewCategory(name string) *Category {
	return &Category{ID: id.New(), Name: name, CreatedAt: time.Now().UTC()}
}

// NewTag creates a tag with a generated ID.
func NewTag(name string) *Tag {
	return &Tag{ID: id.New(), Name: name, CreatedAt: time.Now().UTC()}
}
