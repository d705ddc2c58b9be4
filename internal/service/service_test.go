package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/service"
	"taskboard/tests/testutil"
)

func TestCategoryCreateValidation(t *testing.T) {
	store := testutil.NewSQLStore(t)
	svc := service.NewCategoryService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, "")
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.Create(ctx, "   ")
	assert.ErrorIs(t, err, service.ErrInvalidInput, "whitespace-only names are blank")

	category, err := svc.Create(ctx, "  work  ")
	require.NoError(t, err)
	assert.Equal(t, "work", category.Name, "names are trimmed before storage")

	_, err = svc.Create(ctx, "work")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidInput, "duplicates are a storage fault, not bad input")
}

func TestCategoryDeleteUnknownID(t *testing.T) {
	store := testutil.NewSQLStore(t)
	svc := service.NewCategoryService(store)

	assert.NoError(t, svc.Delete(context.Background(), 999))
}

func TestTaskCreateValidation(t *testing.T) {
	store := testutil.NewSQLStore(t)
	categories := service.NewCategoryService(store)
	tasks := service.NewTaskService(store)
	ctx := context.Background()

	category, err := categories.Create(ctx, "work")
	require.NoError(t, err)

	_, err = tasks.Create(ctx, service.TaskInput{Title: "", CategoryID: category.ID})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = tasks.Create(ctx, service.TaskInput{Title: "  ", CategoryID: category.ID})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = tasks.Create(ctx, service.TaskInput{Title: "report", CategoryID: 0})
	assert.ErrorIs(t, err, service.ErrInvalidInput, "a task needs a category at creation")

	task, err := tasks.Create(ctx, service.TaskInput{Title: "  report  ", CategoryID: category.ID})
	require.NoError(t, err)
	assert.Equal(t, "report", task.Title)
	assert.False(t, task.Done)

	listed, err := tasks.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1, "rejected creates must not leave rows behind")
}

func TestTaskLifecycle(t *testing.T) {
	store := testutil.NewSQLStore(t)
	categories := service.NewCategoryService(store)
	tasks := service.NewTaskService(store)
	ctx := context.Background()

	category, err := categories.Create(ctx, "home")
	require.NoError(t, err)
	task, err := tasks.Create(ctx, service.TaskInput{Title: "water plants", CategoryID: category.ID})
	require.NoError(t, err)

	require.NoError(t, tasks.Toggle(ctx, task.ID))
	listed, err := tasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Done)

	assert.NoError(t, tasks.Toggle(ctx, 999), "unknown ids are a no-op")

	require.NoError(t, tasks.Delete(ctx, task.ID))
	listed, err = tasks.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
	assert.NoError(t, tasks.Delete(ctx, task.ID))
}
