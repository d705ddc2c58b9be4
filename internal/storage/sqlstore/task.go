package sqlstore

import (
	"context"
	"fmt"
	"time"

	"taskboard/internal/model"
)

// ListTasks returns every task joined with its category name, newest
// first. The id tiebreak keeps same-instant rows in insertion order.
func (s *Store) ListTasks(ctx context.Context) ([]model.TaskWithCategory, error) {
	var tasks []model.TaskWithCategory
	err := s.db.SelectContext(ctx, &tasks, `
		SELECT tasks.id, tasks.title, tasks.done, tasks.created_at, tasks.category_id,
		       categories.name AS category_name
		FROM tasks
		LEFT JOIN categories ON categories.id = tasks.category_id
		ORDER BY tasks.created_at DESC, tasks.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask inserts a pending task. created_at is assigned here rather
// than left to the column default so the returned model matches the row.
func (s *Store) CreateTask(ctx context.Context, title string, categoryID int64) (*model.Task, error) {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO tasks (title, done, created_at, category_id) VALUES (?, 0, ?, ?)",
		title, now, categoryID)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading task id: %w", err)
	}
	return &model.Task{ID: id, Title: title, CreatedAt: now, CategoryID: &categoryID}, nil
}

// ToggleTask flips done in a single UPDATE. Unknown ids match zero rows
// and succeed.
func (s *Store) ToggleTask(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET done = NOT done WHERE id = ?", id); err != nil {
		return fmt.Errorf("toggling task %d: %w", id, err)
	}
	return nil
}

// DeleteTask removes a task. Unknown ids delete zero rows and succeed.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	return nil
}
