package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/tests/testutil"
)

func TestTableLifecycle(t *testing.T) {
	s := testutil.NewBareSQLStore(t)
	ctx := context.Background()

	exists, err := s.TablesExist(ctx)
	require.NoError(t, err)
	assert.False(t, exists, "fresh database should have no tables")

	require.NoError(t, s.CreateTables(ctx))
	require.NoError(t, s.CreateTables(ctx), "create must be idempotent")

	exists, err = s.TablesExist(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.DropTables(ctx))
	require.NoError(t, s.DropTables(ctx), "drop must be idempotent")

	exists, err = s.TablesExist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCategoriesSortedByName(t *testing.T) {
	s := testutil.NewSQLStore(t)
	ctx := context.Background()

	for _, name := range []string{"work", "errands", "health"} {
		_, err := s.CreateCategory(ctx, name)
		require.NoError(t, err)
	}

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "errands", categories[0].Name)
	assert.Equal(t, "health", categories[1].Name)
	assert.Equal(t, "work", categories[2].Name)
}

func TestDuplicateCategoryRejected(t *testing.T) {
	s := testutil.NewSQLStore(t)
	ctx := context.Background()

	_, err := s.CreateCategory(ctx, "work")
	require.NoError(t, err)

	_, err = s.CreateCategory(ctx, "work")
	assert.Error(t, err, "unique constraint should reject the duplicate")

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1, "the rejected duplicate must not appear")
}

func TestDeleteCategoryKeepsTasks(t *testing.T) {
	s := testutil.NewSQLStore(t)
	ctx := context.Background()

	category, err := s.CreateCategory(ctx, "work")
	require.NoError(t, err)
	task, err := s.CreateTask(ctx, "write report", category.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteCategory(ctx, category.ID))

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
	assert.Nil(t, tasks[0].CategoryID, "task should be uncategorized after the delete")
	assert.Nil(t, tasks[0].CategoryName)
}

func TestDeleteUnknownCategorySucceeds(t *testing.T) {
	s := testutil.NewSQLStore(t)

	assert.NoError(t, s.DeleteCategory(context.Background(), 4242))
}

func TestCreateTask(t *testing.T) {
	s := testutil.NewSQLStore(t)
	ctx := context.Background()

	category, err := s.CreateCategory(ctx, "home")
	require.NoError(t, err)

	task, err := s.CreateTask(ctx, "fix faucet", category.ID)
	require.NoError(t, err)
	assert.Positive(t, task.ID)
	assert.False(t, task.Done, "new tasks start pending")
	assert.WithinDuration(t, time.Now(), task.CreatedAt, 5*time.Second)

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].CategoryName)
	assert.Equal(t, "home", *tasks[0].CategoryName)
	assert.WithinDuration(t, task.CreatedAt, tasks[0].CreatedAt, time.Second)
}

func TestCreateTaskUnknownCategoryFails(t *testing.T) {
	s := testutil.NewSQLStore(t)

	_, err := s.CreateTask(context.Background(), "orphan", 4242)
	assert.Error(t, err, "foreign key should reject a missing category")
}

func TestToggleTask(t *testing.T) {
	s := testutil.NewSQLStore(t)
	ctx := context.Background()

	category, err := s.CreateCategory(ctx, "work")
	require.NoError(t, err)
	task, err := s.CreateTask(ctx, "send invoice", category.ID)
	require.NoError(t, err)

	require.NoError(t, s.ToggleTask(ctx, task.ID))
	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Done)

	require.NoError(t, s.ToggleTask(ctx, task.ID))
	tasks, err = s.ListTasks(ctx)
	require.NoError(t, err)
	assert.False(t, tasks[0].Done, "second toggle should flip it back")

	assert.NoError(t, s.ToggleTask(ctx, 4242), "unknown ids are a no-op")
}

func TestDeleteTask(t *testing.T) {
	s := testutil.NewSQLStore(t)
	ctx := context.Background()

	category, err := s.CreateCategory(ctx, "work")
	require.NoError(t, err)
	task, err := s.CreateTask(ctx, "send invoice", category.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteTask(ctx, task.ID))
	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	assert.NoError(t, s.DeleteTask(ctx, task.ID), "repeat delete is a no-op")
}

func TestTasksNewestFirst(t *testing.T) {
	s := testutil.NewSQLStore(t)
	ctx := context.Background()

	category, err := s.CreateCategory(ctx, "work")
	require.NoError(t, err)

	for _, title := range []string{"first", "second", "third"} {
		_, err := s.CreateTask(ctx, title, category.ID)
		require.NoError(t, err)
	}

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "first", tasks[2].Title)
}
