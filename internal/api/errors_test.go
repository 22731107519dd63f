package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mgconde/todolist-api/internal/domain"
	"github.com/mgconde/todolist-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"list not found", store.ErrListNotFound, http.StatusNotFound},
		{"item not found", store.ErrItemNotFound, http.StatusNotFound},
		{"job not found", store.ErrJobNotFound, http.StatusNotFound},
		{"duplicate list name", store.ErrListNameExists, http.StatusBadRequest},
		{"duplicate item title", store.ErrItemTitleExists, http.StatusBadRequest},
		{"empty list name", domain.ErrEmptyListName, http.StatusUnprocessableEntity},
		{"empty item title", domain.ErrEmptyItemTitle, http.StatusUnprocessableEntity},
		{"store unavailable", store.ErrUnavailable, http.StatusServiceUnavailable},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestMapErrorToStatusCodeWrappedErrors(t *testing.T) {
	wrapped := store.NewStoreError("todo list", "get", "lookup failed", store.ErrListNotFound)
	assert.Equal(t, http.StatusNotFound, MapErrorToStatusCode(wrapped))
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "Todo list not found", GetSafeErrorMessage(store.ErrListNotFound))
	assert.Equal(t, "A list with this name already exists", GetSafeErrorMessage(store.ErrListNameExists))
	assert.Equal(t, "A task with this title already exists in this list", GetSafeErrorMessage(store.ErrItemTitleExists))

	// Internal detail never reaches the client.
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("dial tcp: secret host")))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}
