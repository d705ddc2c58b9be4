package pgstore

import (
	"context"
	"fmt"

	"taskboard/internal/model"
)

// ListCategories returns every category sorted by name.
func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, name FROM categories ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}
	return categories, nil
}

// CreateCategory inserts a category. The unique constraint on name
// rejects duplicates.
func (s *Store) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	category := model.Category{Name: name}
	err := s.pool.QueryRow(ctx,
		"INSERT INTO categories (name) VALUES ($1) RETURNING id", name).
		Scan(&category.ID)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}
	return &category, nil
}

// DeleteCategory removes a category; the ON DELETE SET NULL action clears
// category_id on its tasks. Unknown ids delete zero rows and succeed.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx,
		"DELETE FROM categories WHERE id = $1", id); err != nil {
		return fmt.Errorf("deleting category %d: %w", id, err)
	}
	return nil
}
