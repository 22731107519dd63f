package api

import (
	"log/slog"
	"net/http"

	"github.com/mgconde/todolist-api/internal/api/shared"
	"github.com/mgconde/todolist-api/internal/platform/logger"
	"github.com/mgconde/todolist-api/internal/service"
)

// TodoListHandler handles todo-list HTTP requests.
type TodoListHandler struct {
	lists  service.TodoListService
	logger *slog.Logger
}

// NewTodoListHandler creates a new TodoListHandler.
func NewTodoListHandler(lists service.TodoListService, logger *slog.Logger) *TodoListHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TodoListHandler")
	}

	return &TodoListHandler{
		lists:  lists,
		logger: logger.With(slog.String("component", "todo_list_handler")),
	}
}

// List handles GET /api/todolists requests.
func (h *TodoListHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.lists.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lists)
}

// Get handles GET /api/todolists/{id} requests.
func (h *TodoListHandler) Get(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid list ID")
		return
	}

	list, err := h.lists.Get(r.Context(), listID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// Create handles POST /api/todolists requests.
func (h *TodoListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateListRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, "List name is required", err)
		return
	}

	list, err := h.lists.Create(r.Context(), req.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("list created",
		slog.Int64("list_id", list.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, list)
}

// Update handles PUT /api/todolists/{id} requests.
func (h *TodoListHandler) Update(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid list ID")
		return
	}

	var req UpdateListRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, "List name is required", err)
		return
	}

	list, err := h.lists.Update(r.Context(), listID, req.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// Delete handles DELETE /api/todolists/{id} requests.
func (h *TodoListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid list ID")
		return
	}

	if err := h.lists.Delete(r.Context(), listID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
