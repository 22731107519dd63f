package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/mgconde/todolist-api/internal/domain"
	"github.com/mgconde/todolist-api/internal/platform/logger"
	"github.com/mgconde/todolist-api/internal/store"
)

// TodoListService provides CRUD operations over todo lists.
type TodoListService interface {
	// List returns all todo lists in insertion order.
	List(ctx context.Context) ([]domain.TodoList, error)

	// Get retrieves a todo list by ID.
	// Returns store.ErrListNotFound if the list does not exist.
	Get(ctx context.Context, listID int64) (*domain.TodoList, error)

	// Create allocates the next list ID and stores a new, empty list.
	// Returns store.ErrListNameExists if a list with the same name
	// (case-insensitive) already exists.
	Create(ctx context.Context, name string) (*domain.TodoList, error)

	// Update replaces the list's name, preserving its items.
	// Returns store.ErrListNotFound if the list does not exist and
	// store.ErrListNameExists if the new name collides with a different list.
	Update(ctx context.Context, listID int64, name string) (*domain.TodoList, error)

	// Delete removes the list and all of its items permanently.
	// Returns store.ErrListNotFound if the list does not exist.
	Delete(ctx context.Context, listID int64) error

	// Save persists the full list document. It is used by the item service,
	// which always mutates items through the parent list.
	Save(ctx context.Context, list *domain.TodoList) error
}

// todoListService implements TodoListService on top of a key-value store.
type todoListService struct {
	store  store.Store
	logger *slog.Logger
}

// NewTodoListService creates a new TodoListService.
// It returns an error if any of the required dependencies are nil.
func NewTodoListService(kv store.Store, logger *slog.Logger) (TodoListService, error) {
	if kv == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "store cannot be nil"}
	}
	if logger == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "logger cannot be nil"}
	}

	return &todoListService{
		store:  kv,
		logger: logger.With(slog.String("component", "todo_list_service")),
	}, nil
}

// log returns the request- or job-scoped logger when the context carries
// one, so service log lines share the caller's trace or job ID.
func (s *todoListService) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

func (s *todoListService) List(ctx context.Context) ([]domain.TodoList, error) {
	keys, err := s.store.Keys(ctx, store.ListKeyPrefix)
	if err != nil {
		return nil, newServiceError("list_lists", "failed to scan list keys", err)
	}

	lists := make([]domain.TodoList, 0, len(keys))
	for _, key := range keys {
		// The ID counter shares the prefix with the documents.
		if key == store.ListCounterKey {
			continue
		}

		data, err := s.store.Get(ctx, key)
		if err != nil {
			// A list deleted between the scan and the read is not an error.
			if errors.Is(err, store.ErrKeyNotFound) {
				continue
			}
			return nil, newServiceError("list_lists", "failed to read list document", err)
		}

		var list domain.TodoList
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, newServiceError("list_lists", "failed to decode list document", err)
		}
		lists = append(lists, list)
	}

	// IDs are monotonic and never reused, so ID order is insertion order.
	sort.Slice(lists, func(i, j int) bool { return lists[i].ID < lists[j].ID })

	return lists, nil
}

func (s *todoListService) Get(ctx context.Context, listID int64) (*domain.TodoList, error) {
	data, err := s.store.Get(ctx, store.ListKey(listID))
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, store.ErrListNotFound
		}
		return nil, newServiceError("get_list", "failed to read list document", err)
	}

	var list domain.TodoList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, newServiceError("get_list", "failed to decode list document", err)
	}

	return &list, nil
}

func (s *todoListService) Create(ctx context.Context, name string) (*domain.TodoList, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyListName
	}

	taken, err := s.nameExists(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, store.ErrListNameExists
	}

	id, err := s.store.NextID(ctx, store.ListCounterKey)
	if err != nil {
		return nil, newServiceError("create_list", "failed to allocate list ID", err)
	}

	list, err := domain.NewTodoList(id, name)
	if err != nil {
		return nil, newServiceError("create_list", "invalid list", err)
	}

	if err := s.Save(ctx, list); err != nil {
		return nil, err
	}

	s.log(ctx).Debug("todo list created",
		slog.Int64("list_id", list.ID),
		slog.String("name", list.Name))

	return list, nil
}

func (s *todoListService) Update(ctx context.Context, listID int64, name string) (*domain.TodoList, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyListName
	}

	list, err := s.Get(ctx, listID)
	if err != nil {
		return nil, err
	}

	// Exclude the list itself so an unchanged name never conflicts.
	taken, err := s.nameExists(ctx, name, listID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, store.ErrListNameExists
	}

	list.Name = name
	if err := s.Save(ctx, list); err != nil {
		return nil, err
	}

	s.log(ctx).Debug("todo list updated",
		slog.Int64("list_id", list.ID),
		slog.String("name", list.Name))

	return list, nil
}

func (s *todoListService) Delete(ctx context.Context, listID int64) error {
	if err := s.store.Delete(ctx, store.ListKey(listID)); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return store.ErrListNotFound
		}
		return newServiceError("delete_list", "failed to delete list document", err)
	}

	// Drop the per-list item counter as well. The list ID is never reused,
	// so a fresh counter can never hand out an ID an old item held.
	if err := s.store.Delete(ctx, store.ItemCounterKey(listID)); err != nil &&
		!errors.Is(err, store.ErrKeyNotFound) {
		return newServiceError("delete_list", "failed to delete item counter", err)
	}

	s.log(ctx).Debug("todo list deleted", slog.Int64("list_id", listID))

	return nil
}

func (s *todoListService) Save(ctx context.Context, list *domain.TodoList) error {
	if err := list.Validate(); err != nil {
		return newServiceError("save_list", "invalid list", err)
	}

	data, err := json.Marshal(list)
	if err != nil {
		return newServiceError("save_list", "failed to encode list document", err)
	}

	if err := s.store.Put(ctx, store.ListKey(list.ID), data); err != nil {
		return newServiceError("save_list", "failed to write list document", err)
	}

	return nil
}

// nameExists reports whether another list already uses the given name,
// compared case-insensitively. excludeID skips the list being updated;
// pass 0 on create. Uniqueness is checked with a linear scan, which is
// fine at the scale this store sees.
func (s *todoListService) nameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	lists, err := s.List(ctx)
	if err != nil {
		return false, err
	}

	want := domain.NormalizeKey(name)
	for _, list := range lists {
		if excludeID != 0 && list.ID == excludeID {
			continue
		}
		if domain.NormalizeKey(list.Name) == want {
			return true, nil
		}
	}

	return false, nil
}
