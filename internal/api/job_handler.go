package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mgconde/todolist-api/internal/api/shared"
	"github.com/mgconde/todolist-api/internal/task"
)

// JobHandler handles job status HTTP requests. All job access goes
// through the dispatcher, which fronts the job store for both enqueue
// and status reads.
type JobHandler struct {
	dispatcher *task.Dispatcher
	logger     *slog.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(dispatcher *task.Dispatcher, logger *slog.Logger) *JobHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for JobHandler")
	}

	return &JobHandler{
		dispatcher: dispatcher,
		logger:     logger.With(slog.String("component", "job_handler")),
	}
}

// Get handles GET /api/jobs/{jobID} requests. It returns the current
// snapshot of the job's status record; polling it observes the
// queued -> started -> finished/failed transitions.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	if jobID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Job ID is required")
		return
	}

	job, err := h.dispatcher.GetJob(r.Context(), jobID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, jobToResponse(job))
}
