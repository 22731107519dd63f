package api

import (
	"log/slog"
	"net/http"

	"github.com/mgconde/todolist-api/internal/api/shared"
	"github.com/mgconde/todolist-api/internal/platform/logger"
	"github.com/mgconde/todolist-api/internal/service"
	"github.com/mgconde/todolist-api/internal/task"
)

// TodoItemHandler handles item HTTP requests, scoped under a parent list.
type TodoItemHandler struct {
	items      service.TodoItemService
	dispatcher *task.Dispatcher
	logger     *slog.Logger
}

// NewTodoItemHandler creates a new TodoItemHandler.
func NewTodoItemHandler(
	items service.TodoItemService,
	dispatcher *task.Dispatcher,
	logger *slog.Logger,
) *TodoItemHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TodoItemHandler")
	}

	return &TodoItemHandler{
		items:      items,
		dispatcher: dispatcher,
		logger:     logger.With(slog.String("component", "todo_item_handler")),
	}
}

// List handles GET /api/todolists/{id}/items requests.
func (h *TodoItemHandler) List(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid list ID")
		return
	}

	items, err := h.items.List(r.Context(), listID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// Get handles GET /api/todolists/{id}/items/{itemID} requests.
func (h *TodoItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	listID, itemID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	item, err := h.items.Get(r.Context(), listID, itemID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// Create handles POST /api/todolists/{id}/items requests.
func (h *TodoItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid list ID")
		return
	}

	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, "Item title is required", err)
		return
	}

	item, err := h.items.Create(r.Context(), listID, req.Title, req.Description, req.Completed)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("item created",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", item.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, item)
}

// Update handles PUT /api/todolists/{id}/items/{itemID} requests.
// Only fields present in the body are applied.
func (h *TodoItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	listID, itemID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, "Item title cannot be empty", err)
		return
	}

	item, err := h.items.Update(r.Context(), listID, itemID, service.ItemPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// Toggle handles PATCH /api/todolists/{id}/items/{itemID}/toggle requests.
func (h *TodoItemHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	listID, itemID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	item, err := h.items.Toggle(r.Context(), listID, itemID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// Delete handles DELETE /api/todolists/{id}/items/{itemID} requests.
func (h *TodoItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	listID, itemID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	if err := h.items.Delete(r.Context(), listID, itemID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompleteAll handles POST /api/todolists/{id}/items/complete-all requests.
// It enqueues the bulk completion as a background job and returns 202 with
// the job ID and the path to poll. The list must exist before anything is
// enqueued, so a bad list ID fails here, not inside the worker.
func (h *TodoItemHandler) CompleteAll(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid list ID")
		return
	}

	if _, err := h.items.List(r.Context(), listID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	job, err := h.dispatcher.Enqueue(r.Context(), task.NewCompleteAllCommand(listID))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to enqueue job", err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("complete-all job enqueued",
		slog.Int64("list_id", listID),
		slog.String("job_id", job.ID))
	shared.RespondWithJSON(w, r, http.StatusAccepted, EnqueueResponse{
		JobID:       job.ID,
		CheckStatus: "/api/jobs/" + job.ID,
	})
}

// pathIDs extracts both the list and item IDs, writing the 400 response
// itself when either is malformed.
func (h *TodoItemHandler) pathIDs(w http.ResponseWriter, r *http.Request) (listID, itemID int64, ok bool) {
	listID, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid list ID")
		return 0, 0, false
	}

	itemID, err = pathID(r, "itemID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid item ID")
		return 0, 0, false
	}

	return listID, itemID, true
}
