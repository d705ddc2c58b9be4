package service

import (
	"context"
	"fmt"
	"strings"

	"taskboard/internal/model"
	"taskboard/internal/storage"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title      string
	CategoryID int64
}

// TaskService wraps task-related business logic.
type TaskService struct {
	store storage.Store
}

func NewTaskService(store storage.Store) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) List(ctx context.Context) ([]model.TaskWithCategory, error) {
	return s.store.ListTasks(ctx)
}

// Create validates the input and stores a new pending task. A category is
// required at creation; tasks only lose it later when the category goes.
func (s *TaskService) Create(ctx context.Context, input TaskInput) (*model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if input.CategoryID <= 0 {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	return s.store.CreateTask(ctx, title, input.CategoryID)
}

// Toggle flips a task between pending and done. Unknown ids are a no-op.
func (s *TaskService) Toggle(ctx context.Context, id int64) error {
	return s.store.ToggleTask(ctx, id)
}

// Delete removes a task for good. Unknown ids are a no-op.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteTask(ctx, id)
}
