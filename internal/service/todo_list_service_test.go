package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgconde/todolist-api/internal/domain"
	"github.com/mgconde/todolist-api/internal/platform/memory"
	"github.com/mgconde/todolist-api/internal/service"
	"github.com/mgconde/todolist-api/internal/store"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newListService(t *testing.T) service.TodoListService {
	t.Helper()
	lists, err := service.NewTodoListService(memory.New(), newTestLogger())
	require.NoError(t, err)
	return lists
}

func TestNewTodoListServiceNilDeps(t *testing.T) {
	_, err := service.NewTodoListService(nil, newTestLogger())
	assert.Error(t, err)

	_, err = service.NewTodoListService(memory.New(), nil)
	assert.Error(t, err)
}

func TestListServiceCreate(t *testing.T) {
	ctx := context.Background()
	lists := newListService(t)

	list, err := lists.Create(ctx, "Groceries")
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.ID)
	assert.Equal(t, "Groceries", list.Name)
	assert.Empty(t, list.Items)

	second, err := lists.Create(ctx, "Chores")
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestListServiceCreateDuplicateName(t *testing.T) {
	ctx := context.Background()
	lists := newListService(t)

	_, err := lists.Create(ctx, "Groceries")
	require.NoError(t, err)

	// Differs only by case: still a duplicate.
	_, err = lists.Create(ctx, "gROCERIES")
	assert.ErrorIs(t, err, store.ErrListNameExists)

	// Surrounding whitespace does not evade the check either.
	_, err = lists.Create(ctx, "  groceries ")
	assert.ErrorIs(t, err, store.ErrListNameExists)
}

func TestListServiceCreateEmptyName(t *testing.T) {
	ctx := context.Background()
	lists := newListService(t)

	_, err := lists.Create(ctx, "")
	assert.ErrorIs(t, err, domain.ErrEmptyListName)

	_, err = lists.Create(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyListName)
}

func TestListServiceGet(t *testing.T) {
	ctx := context.Background()
	lists := newListService(t)

	created, err := lists.Create(ctx, "Groceries")
	require.NoError(t, err)

	got, err := lists.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Groceries", got.Name)

	_, err = lists.Get(ctx, 99)
	assert.ErrorIs(t, err, store.ErrListNotFound)
}

func TestListServiceListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	lists := newListService(t)

	for _, name := range []string{"One", "Two", "Three"} {
		_, err := lists.Create(ctx, name)
		require.NoError(t, err)
	}

	all, err := lists.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "One", all[0].Name)
	assert.Equal(t, "Two", all[1].Name)
	assert.Equal(t, "Three", all[2].Name)
}

func TestListServiceUpdate(t *testing.T) {
	ctx := context.Background()
	lists := newListService(t)

	created, err := lists.Create(ctx, "Groceries")
	require.NoError(t, err)

	updated, err := lists.Update(ctx, created.ID, "Weekend Groceries")
	require.NoError(t, err)
	assert.Equal(t, "Weekend Groceries", updated.Name)
	assert.Equal(t, created.ID, updated.ID)

	_, err = lists.Update(ctx, 99, "Anything")
	assert.ErrorIs(t, err, store.ErrListNotFound)
}

func TestListServiceUpdateSelfNameNoConflict(t *testing.T) {
	ctx := context.Background()
	lists := newListService(t)

	created, err := lists.Create(ctx, "Groceries")
	require.NoError(t, err)

	// Renaming a list to its own name (even with different case) is fine.
	updated, err := lists.Update(ctx, created.ID, "GROCERIES")
	require.NoError(t, err)
	assert.Equal(t, "GROCERIES", updated.Name)
}

func TestListServiceUpdateDuplicateName(t *testing.T) {
	ctx := context.Background()
	lists := newListService(t)

	_, err := lists.Create(ctx, "Groceries")
	require.NoError(t, err)
	second, err := lists.Create(ctx, "Chores")
	require.NoError(t, err)

	_, err = lists.Update(ctx, second.ID, "groceries")
	assert.ErrorIs(t, err, store.ErrListNameExists)
}

func TestListServiceUpdatePreservesItems(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	lists, err := service.NewTodoListService(kv, newTestLogger())
	require.NoError(t, err)
	items, err := service.NewTodoItemService(kv, lists, newTestLogger())
	require.NoError(t, err)

	created, err := lists.Create(ctx, "Groceries")
	require.NoError(t, err)
	_, err = items.Create(ctx, created.ID, "Milk", "", false)
	require.NoError(t, err)

	updated, err := lists.Update(ctx, created.ID, "Renamed")
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Milk", updated.Items[0].Title)
}

func TestListServiceDelete(t *testing.T) {
	ctx := context.Background()
	lists := newListService(t)

	created, err := lists.Create(ctx, "Groceries")
	require.NoError(t, err)

	require.NoError(t, lists.Delete(ctx, created.ID))

	_, err = lists.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrListNotFound)

	assert.ErrorIs(t, lists.Delete(ctx, created.ID), store.ErrListNotFound)
}

func TestListServiceIDsNeverReused(t *testing.T) {
	ctx := context.Background()
	lists := newListService(t)

	first, err := lists.Create(ctx, "One")
	require.NoError(t, err)
	require.NoError(t, lists.Delete(ctx, first.ID))

	second, err := lists.Create(ctx, "Two")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}
