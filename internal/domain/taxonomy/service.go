package taxonomy

import (
	"context"
	"fmt"

	"officex/internal/core/apperror"
)

// Service provides business logic for categories and tags.
type Service struct {
	repo Repository
}

// NewService creates a new taxonomy service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListCategories returns all categories.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory validates the name and persists a new category.
// Invalid names are reported through the Result, not as an error.
func (s *Service) CreateCategory(ctx context.Context, name string) (*Category, Result, error) {
	res := ValidateCategoryName(name)
	if !res.Valid {
		return nil, res, nil
	}

	exists, err := s.repo.CategoryExists(ctx, name)
	if err != nil {
		return nil, res, fmt.Errorf("check category: %w", err)
	}
	if exists {
		return nil, res, apperror.NewDuplicate("category", "name", name)
	}

	c := NewCategory(name)
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, res, fmt.Errorf("create category: %w", err)
	}
	return c, res, nil
}

// ListTags returns all tags.
func (s *Service) ListTags(ctx context.Context) ([]Tag, error) {
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// CreateTag validates the name and persists a new tag.
func (s *Service) CreateTag(ctx context.Context, name string) (*Tag, Result, error) {
	res := ValidateTagName(name)
	if !res.Valid {
		return nil, res, nil
	}

	exists, err := s.repo.TagExists(ctx, name)
	if err != nil {
		return nil, res, fmt.Errorf("check tag: %w", err)
	}
	if exists {
		return nil, res, apperror.NewDuplicate("tag", "name", name)
	}

	t := NewTag(name)
	if err := s.repo.CreateTag(ctx, t); err != nil {
		return nil, res, fmt.Errorf("create tag: %w", err)
	}
	return t, res, nil
}
