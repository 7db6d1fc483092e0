package taxonomy

import "context"

// Repository defines the interface for taxonomy persistence.
type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	CategoryExists(ctx context.Context, name string) (bool, error)

	ListTags(ctx context.Context) ([]Tag, error)
	CreateTag(ctx context.Context, t *Tag) error
	TagExists(ctx context.Context, name string) (bool, error)
}
