package service

import (
	"context"
	"fmt"
	"strings"

	"taskboard/internal/model"
	"taskboard/internal/storage"
)

// CategoryService provides helpers around categories.
type CategoryService struct {
	store storage.Store
}

func NewCategoryService(store storage.Store) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.store.ListCategories(ctx)
}

// Create rejects blank names before touching storage. Duplicate names
// surface as storage errors from the unique constraint.
func (s *CategoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return s.store.CreateCategory(ctx, name)
}

// Delete removes a category; its tasks survive uncategorized. Deleting an
// unknown id is a no-op.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteCategory(ctx, id)
}
