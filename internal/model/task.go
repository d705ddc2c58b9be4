package model

import "time"

// Task represents a single item on the board. CategoryID is nullable:
// deleting a category keeps its tasks and sets the reference to NULL.
type Task struct {
	ID         int64     `db:"id" gorm:"primaryKey"`
	Title      string    `db:"title" gorm:"not null"`
	Done       bool      `db:"done" gorm:"not null;default:false"`
	CreatedAt  time.Time `db:"created_at"`
	CategoryID *int64    `db:"category_id" gorm:"index"`
}

// TaskWithCategory is a listing row: the task joined with its category
// name, nil when the task has no category.
type TaskWithCategory struct {
	Task
	CategoryName *string `db:"category_name"`
}
