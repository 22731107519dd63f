package service

import (
	"errors"
	"fmt"

	"github.com/mgconde/todolist-api/internal/domain"
	"github.com/mgconde/todolist-api/internal/store"
)

// ServiceError wraps errors from the service layer with operation context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_list").
	Operation string
	// Message is a human-readable description of the error.
	Message string
	// Err is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError wraps an error with operation context. Sentinel errors
// that callers match on (not found, duplicate, validation, store outage)
// are returned unwrapped so errors.Is stays cheap at the call sites.
func newServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if store.IsNotFoundError(err) ||
		store.IsDuplicateError(err) ||
		errors.Is(err, store.ErrUnavailable) ||
		errors.Is(err, domain.ErrEmptyListName) ||
		errors.Is(err, domain.ErrEmptyItemTitle) {
		return err
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
