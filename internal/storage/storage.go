package storage

import (
	"context"

	"taskboard/internal/model"
)

// Store is the persistence surface shared by every backend. Handlers and
// services depend on this interface only; the concrete store is chosen at
// startup from configuration.
type Store interface {
	// ListCategories returns all categories sorted by name.
	ListCategories(ctx context.Context) ([]model.Category, error)
	// CreateCategory inserts a category. Duplicate names fail on the
	// unique constraint.
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	// DeleteCategory removes a category. Tasks referencing it survive
	// with a NULL category_id. Unknown ids are a no-op.
	DeleteCategory(ctx context.Context, id int64) error

	// ListTasks returns all tasks joined with their category names,
	// newest first.
	ListTasks(ctx context.Context) ([]model.TaskWithCategory, error)
	// CreateTask inserts a pending task referencing an existing category.
	CreateTask(ctx context.Context, title string, categoryID int64) (*model.Task, error)
	// ToggleTask flips the done flag in place. Unknown ids are a no-op.
	ToggleTask(ctx context.Context, id int64) error
	// DeleteTask removes a task. Unknown ids are a no-op.
	DeleteTask(ctx context.Context, id int64) error

	Ping(ctx context.Context) error
	Close() error
}

// Provisioner is implemented by backends whose schema is managed through
// explicit setup calls instead of automatic migration at open. The web
// layer exposes setup endpoints only when the active store supports this.
type Provisioner interface {
	// TablesExist reports whether the full schema is present.
	TablesExist(ctx context.Context) (bool, error)
	// CreateTables provisions the schema. Safe to call repeatedly.
	CreateTables(ctx context.Context) error
	// DropTables removes the schema and all data. Safe to call repeatedly.
	DropTables(ctx context.Context) error
}
