package gormstore

import (
	"context"
	"fmt"

	"taskboard/internal/model"
)

func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *Store) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	category := model.Category{Name: name}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &category, nil
}

// DeleteCategory removes a category; the foreign key action nulls out
// category_id on its tasks. Deleting an unknown id succeeds silently.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Delete(&model.Category{}, id).Error; err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
