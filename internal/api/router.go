package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mgconde/todolist-api/internal/api/middleware"
	"github.com/mgconde/todolist-api/internal/service"
	"github.com/mgconde/todolist-api/internal/task"
)

// NewRouter builds the application router with all routes and middleware.
func NewRouter(
	lists service.TodoListService,
	items service.TodoItemService,
	dispatcher *task.Dispatcher,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)

	listHandler := NewTodoListHandler(lists, logger)
	itemHandler := NewTodoItemHandler(items, dispatcher, logger)
	jobHandler := NewJobHandler(dispatcher, logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/todolists", func(r chi.Router) {
			r.Get("/", listHandler.List)
			r.Post("/", listHandler.Create)
			r.Get("/{id}", listHandler.Get)
			r.Put("/{id}", listHandler.Update)
			r.Delete("/{id}", listHandler.Delete)

			r.Route("/{id}/items", func(r chi.Router) {
				r.Get("/", itemHandler.List)
				r.Post("/", itemHandler.Create)
				r.Post("/complete-all", itemHandler.CompleteAll)
				r.Get("/{itemID}", itemHandler.Get)
				r.Put("/{itemID}", itemHandler.Update)
				r.Patch("/{itemID}/toggle", itemHandler.Toggle)
				r.Delete("/{itemID}", itemHandler.Delete)
			})
		})

		r.Get("/jobs/{jobID}", jobHandler.Get)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
