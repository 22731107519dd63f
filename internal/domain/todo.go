package domain

import (
	"errors"
	"strings"
)

// Common validation errors for TodoList and TodoItem
var (
	ErrInvalidListID  = errors.New("todo list ID must be positive")
	ErrEmptyListName  = errors.New("todo list name cannot be empty")
	ErrInvalidItemID  = errors.New("todo item ID must be positive")
	ErrEmptyItemTitle = errors.New("todo item title cannot be empty")
)

// TodoItem represents a single task within a TodoList. Item IDs are
// sequential within their parent list and are never reused.
type TodoItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
}

// NewTodoItem creates a new TodoItem with the given ID and fields.
// Returns an error if validation fails.
func NewTodoItem(id int64, title, description string, completed bool) (*TodoItem, error) {
	item := &TodoItem{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   completed,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the TodoItem has valid data.
func (i *TodoItem) Validate() error {
	if i.ID <= 0 {
		return ErrInvalidItemID
	}

	if strings.TrimSpace(i.Title) == "" {
		return ErrEmptyItemTitle
	}

	return nil
}

// TodoList represents a named collection of todo items. The list owns
// its items exclusively: items are created, mutated, and destroyed only
// through operations on the parent list.
type TodoList struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Items []TodoItem `json:"items"`
}

// NewTodoList creates a new, empty TodoList with the given ID and name.
// Returns an error if validation fails.
func NewTodoList(id int64, name string) (*TodoList, error) {
	list := &TodoList{
		ID:    id,
		Name:  name,
		Items: []TodoItem{},
	}

	if err := list.Validate(); err != nil {
		return nil, err
	}

	return list, nil
}

// Validate checks if the TodoList has valid data.
func (l *TodoList) Validate() error {
	if l.ID <= 0 {
		return ErrInvalidListID
	}

	if strings.TrimSpace(l.Name) == "" {
		return ErrEmptyListName
	}

	return nil
}

// Item returns a pointer to the item with the given ID, or nil if the
// list contains no such item.
func (l *TodoList) Item(itemID int64) *TodoItem {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			return &l.Items[i]
		}
	}
	return nil
}

// NormalizeKey lowercases and trims a name or title for case-insensitive
// uniqueness comparison.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
