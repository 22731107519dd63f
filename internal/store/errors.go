package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is a generic version of the entity-specific not found
	// errors (e.g., ErrListNotFound, ErrItemNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrKeyNotFound is returned by Store.Get and Store.Delete when the
	// requested key is absent.
	ErrKeyNotFound = fmt.Errorf("%w: key", ErrNotFound)

	// ErrDuplicate is returned when an operation would create a duplicate of
	// a unique entity (e.g., a list whose name differs only by case).
	ErrDuplicate = errors.New("entity already exists")

	// ErrUnavailable is returned when the backing store is unreachable
	// (connection refused, timeout). The in-flight request fails; there is
	// no retry.
	ErrUnavailable = errors.New("store unavailable")

	// Entity-specific "not found" errors

	// ErrListNotFound indicates that the requested todo list does not exist.
	ErrListNotFound = fmt.Errorf("%w: todo list", ErrNotFound)

	// ErrItemNotFound indicates that the requested item does not exist
	// within its parent list.
	ErrItemNotFound = fmt.Errorf("%w: todo item", ErrNotFound)

	// ErrJobNotFound indicates that the requested job record does not exist.
	ErrJobNotFound = fmt.Errorf("%w: job", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrListNameExists indicates that a list with the given name already
	// exists (case-insensitive).
	ErrListNameExists = fmt.Errorf("%w: list name", ErrDuplicate)

	// ErrItemTitleExists indicates that an item with the given title already
	// exists in the same list (case-insensitive).
	ErrItemTitleExists = fmt.Errorf("%w: item title", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with
// additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "todo list", "job")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation,
// message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
