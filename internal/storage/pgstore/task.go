package pgstore

import (
	"context"
	"fmt"

	"taskboard/internal/model"
)

// ListTasks returns every task joined with its category name, newest
// first. The id tiebreak keeps same-instant rows in insertion order.
func (s *Store) ListTasks(ctx context.Context) ([]model.TaskWithCategory, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT tasks.id, tasks.title, tasks.done, tasks.created_at, tasks.category_id,
		       categories.name AS category_name
		FROM tasks
		LEFT JOIN categories ON categories.id = tasks.category_id
		ORDER BY tasks.created_at DESC, tasks.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.TaskWithCategory
	for rows.Next() {
		var t model.TaskWithCategory
		if err := rows.Scan(&t.ID, &t.Title, &t.Done, &t.CreatedAt, &t.CategoryID, &t.CategoryName); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask inserts a pending task; id and created_at come back from the
// database so the returned model matches the row exactly.
func (s *Store) CreateTask(ctx context.Context, title string, categoryID int64) (*model.Task, error) {
	task := model.Task{Title: title, CategoryID: &categoryID}
	err := s.pool.QueryRow(ctx,
		"INSERT INTO tasks (title, category_id) VALUES ($1, $2) RETURNING id, created_at",
		title, categoryID).
		Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return &task, nil
}

// ToggleTask flips done in a single UPDATE. Unknown ids match zero rows
// and succeed.
func (s *Store) ToggleTask(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx,
		"UPDATE tasks SET done = NOT done WHERE id = $1", id); err != nil {
		return fmt.Errorf("toggling task %d: %w", id, err)
	}
	return nil
}

// DeleteTask removes a task. Unknown ids delete zero rows and succeed.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx,
		"DELETE FROM tasks WHERE id = $1", id); err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	return nil
}
