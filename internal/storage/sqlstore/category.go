package sqlstore

import (
	"context"
	"fmt"

	"taskboard/internal/model"
)

// ListCategories returns every category sorted by name.
func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := s.db.SelectContext(ctx, &categories,
		"SELECT id, name FROM categories ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	return categories, nil
}

// CreateCategory inserts a category. The unique index on name rejects
// duplicates.
func (s *Store) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (name) VALUES (?)", name)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading category id: %w", err)
	}
	return &model.Category{ID: id, Name: name}, nil
}

// DeleteCategory removes a category; the ON DELETE SET NULL action clears
// category_id on its tasks. Unknown ids delete zero rows and succeed.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM categories WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting category %d: %w", id, err)
	}
	return nil
}
