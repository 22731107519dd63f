package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mgconde/todolist-api/internal/domain"
	"github.com/mgconde/todolist-api/internal/platform/logger"
	"github.com/mgconde/todolist-api/internal/store"
)

// ItemPatch carries the optional fields of a partial item update. A nil
// field means "leave unchanged"; only non-nil fields are applied.
type ItemPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// CompleteAllResult reports the outcome of a bulk completion.
type CompleteAllResult struct {
	Completed int    `json:"completed"`
	Message   string `json:"message"`
}

// TodoItemService provides operations over items within a todo list.
// Every operation resolves the parent list first and returns
// store.ErrListNotFound if the list ID is invalid.
type TodoItemService interface {
	// List returns all items of the given list, in insertion order.
	List(ctx context.Context, listID int64) ([]domain.TodoItem, error)

	// Get retrieves a single item.
	// Returns store.ErrItemNotFound if the item is absent from the list.
	Get(ctx context.Context, listID, itemID int64) (*domain.TodoItem, error)

	// Create allocates the next per-list item ID, appends the item, and
	// persists the whole parent list. Returns store.ErrItemTitleExists if
	// the title collides (case-insensitive) with another item in the list.
	Create(ctx context.Context, listID int64, title, description string, completed bool) (*domain.TodoItem, error)

	// Update applies the non-nil fields of patch to the item.
	// Returns store.ErrItemNotFound if the item is absent and
	// store.ErrItemTitleExists on a title collision with a different item.
	Update(ctx context.Context, listID, itemID int64, patch ItemPatch) (*domain.TodoItem, error)

	// Toggle flips the item's completed flag.
	Toggle(ctx context.Context, listID, itemID int64) (*domain.TodoItem, error)

	// Delete removes the item from the list's sequence.
	Delete(ctx context.Context, listID, itemID int64) error

	// CompleteAll marks every incomplete item completed and persists the
	// list once if anything changed. It has no special concurrency
	// handling: if the list is mutated concurrently the last writer wins.
	CompleteAll(ctx context.Context, listID int64) (CompleteAllResult, error)
}

// todoItemService implements TodoItemService. Items live embedded in their
// parent list document, so every mutation goes through the list service's
// Get and Save; only the per-list ID counter touches the store directly.
type todoItemService struct {
	store  store.Store
	lists  TodoListService
	logger *slog.Logger
}

// NewTodoItemService creates a new TodoItemService.
// It returns an error if any of the required dependencies are nil.
func NewTodoItemService(kv store.Store, lists TodoListService, logger *slog.Logger) (TodoItemService, error) {
	if kv == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "store cannot be nil"}
	}
	if lists == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "list service cannot be nil"}
	}
	if logger == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "logger cannot be nil"}
	}

	return &todoItemService{
		store:  kv,
		lists:  lists,
		logger: logger.With(slog.String("component", "todo_item_service")),
	}, nil
}

// log returns the request- or job-scoped logger when the context carries
// one, so service log lines share the caller's trace or job ID.
func (s *todoItemService) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

func (s *todoItemService) List(ctx context.Context, listID int64) ([]domain.TodoItem, error) {
	list, err := s.lists.Get(ctx, listID)
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (s *todoItemService) Get(ctx context.Context, listID, itemID int64) (*domain.TodoItem, error) {
	list, err := s.lists.Get(ctx, listID)
	if err != nil {
		return nil, err
	}

	item := list.Item(itemID)
	if item == nil {
		return nil, store.ErrItemNotFound
	}

	return item, nil
}

func (s *todoItemService) Create(ctx context.Context, listID int64, title, description string, completed bool) (*domain.TodoItem, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrEmptyItemTitle
	}

	list, err := s.lists.Get(ctx, listID)
	if err != nil {
		return nil, err
	}

	if titleExists(list, title, 0) {
		return nil, store.ErrItemTitleExists
	}

	id, err := s.store.NextID(ctx, store.ItemCounterKey(listID))
	if err != nil {
		return nil, newServiceError("create_item", "failed to allocate item ID", err)
	}

	item, err := domain.NewTodoItem(id, title, description, completed)
	if err != nil {
		return nil, newServiceError("create_item", "invalid item", err)
	}

	list.Items = append(list.Items, *item)
	if err := s.lists.Save(ctx, list); err != nil {
		return nil, err
	}

	s.log(ctx).Debug("todo item created",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", item.ID),
		slog.String("title", item.Title))

	return item, nil
}

func (s *todoItemService) Update(ctx context.Context, listID, itemID int64, patch ItemPatch) (*domain.TodoItem, error) {
	list, err := s.lists.Get(ctx, listID)
	if err != nil {
		return nil, err
	}

	item := list.Item(itemID)
	if item == nil {
		return nil, store.ErrItemNotFound
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, domain.ErrEmptyItemTitle
		}
		// Exclude the item itself so an unchanged title never conflicts.
		if titleExists(list, *patch.Title, itemID) {
			return nil, store.ErrItemTitleExists
		}
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Completed != nil {
		item.Completed = *patch.Completed
	}

	if err := s.lists.Save(ctx, list); err != nil {
		return nil, err
	}

	s.log(ctx).Debug("todo item updated",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", itemID))

	return item, nil
}

func (s *todoItemService) Toggle(ctx context.Context, listID, itemID int64) (*domain.TodoItem, error) {
	list, err := s.lists.Get(ctx, listID)
	if err != nil {
		return nil, err
	}

	item := list.Item(itemID)
	if item == nil {
		return nil, store.ErrItemNotFound
	}

	item.Completed = !item.Completed
	if err := s.lists.Save(ctx, list); err != nil {
		return nil, err
	}

	s.log(ctx).Debug("todo item toggled",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", itemID),
		slog.Bool("completed", item.Completed))

	return item, nil
}

func (s *todoItemService) Delete(ctx context.Context, listID, itemID int64) error {
	list, err := s.lists.Get(ctx, listID)
	if err != nil {
		return err
	}

	for i := range list.Items {
		if list.Items[i].ID == itemID {
			list.Items = append(list.Items[:i], list.Items[i+1:]...)
			if err := s.lists.Save(ctx, list); err != nil {
				return err
			}

			s.log(ctx).Debug("todo item deleted",
				slog.Int64("list_id", listID),
				slog.Int64("item_id", itemID))

			return nil
		}
	}

	return store.ErrItemNotFound
}

func (s *todoItemService) CompleteAll(ctx context.Context, listID int64) (CompleteAllResult, error) {
	list, err := s.lists.Get(ctx, listID)
	if err != nil {
		return CompleteAllResult{}, err
	}

	completed := 0
	for i := range list.Items {
		if !list.Items[i].Completed {
			list.Items[i].Completed = true
			completed++
		}
	}

	// Persist once, and only if something actually changed.
	if completed > 0 {
		if err := s.lists.Save(ctx, list); err != nil {
			return CompleteAllResult{}, err
		}
	}

	s.log(ctx).Info("completed all items",
		slog.Int64("list_id", listID),
		slog.Int("completed", completed))

	return CompleteAllResult{
		Completed: completed,
		Message:   fmt.Sprintf("Completed %d tasks", completed),
	}, nil
}

// titleExists reports whether another item in the list already uses the
// given title, compared case-insensitively. excludeItemID skips the item
// being updated; pass 0 on create.
func titleExists(list *domain.TodoList, title string, excludeItemID int64) bool {
	want := domain.NormalizeKey(title)
	for i := range list.Items {
		if excludeItemID != 0 && list.Items[i].ID == excludeItemID {
			continue
		}
		if domain.NormalizeKey(list.Items[i].Title) == want {
			return true
		}
	}
	return false
}
