package api

import (
	"errors"
	"net/http"

	"github.com/mgconde/todolist-api/internal/domain"
	"github.com/mgconde/todolist-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Duplicates are 400 rather than 409: the public surface has always
// reported duplicate names and titles as bad requests.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsDuplicateError(err):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrEmptyListName),
		errors.Is(err, domain.ErrEmptyItemTitle):
		return http.StatusUnprocessableEntity

	case errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Internal detail stays in the logs.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrListNotFound):
		return "Todo list not found"

	case errors.Is(err, store.ErrItemNotFound):
		return "Todo item not found"

	case errors.Is(err, store.ErrJobNotFound):
		return "Job not found"

	case errors.Is(err, store.ErrListNameExists):
		return "A list with this name already exists"

	case errors.Is(err, store.ErrItemTitleExists):
		return "A task with this title already exists in this list"

	case errors.Is(err, domain.ErrEmptyListName):
		return "List name cannot be empty"

	case errors.Is(err, domain.ErrEmptyItemTitle):
		return "Item title cannot be empty"

	case errors.Is(err, store.ErrUnavailable):
		return "Storage backend is unavailable"

	default:
		return "An unexpected error occurred"
	}
}
