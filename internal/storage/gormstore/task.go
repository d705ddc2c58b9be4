package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

// ListTasks joins each task with its category name, newest first. The id
// tiebreak keeps rows created in the same instant in insertion order.
func (s *Store) ListTasks(ctx context.Context) ([]model.TaskWithCategory, error) {
	var tasks []model.TaskWithCategory
	err := s.db.WithContext(ctx).
		Model(&model.Task{}).
		Select("tasks.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = tasks.category_id").
		Order("tasks.created_at DESC, tasks.id DESC").
		Scan(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *Store) CreateTask(ctx context.Context, title string, categoryID int64) (*model.Task, error) {
	task := model.Task{Title: title, CategoryID: &categoryID}
	if err := s.db.WithContext(ctx).Create(&task).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &task, nil
}

// ToggleTask flips done in a single UPDATE so concurrent toggles never
// lose a flip. Unknown ids match zero rows and succeed.
func (s *Store) ToggleTask(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ?", id).
		UpdateColumn("done", gorm.Expr("NOT done")).Error
	if err != nil {
		return fmt.Errorf("toggle task: %w", err)
	}
	return nil
}

func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Delete(&model.Task{}, id).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
