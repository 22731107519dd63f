package api

import (
	"encoding/json"

	"github.com/mgconde/todolist-api/internal/task"
)

// Common request/response structures. List and item responses use the
// domain types directly; their JSON shape is the API shape.

// CreateListRequest defines the payload for creating a todo list.
type CreateListRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// UpdateListRequest defines the payload for renaming a todo list.
type UpdateListRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// CreateItemRequest defines the payload for creating an item.
type CreateItemRequest struct {
	Title       string `json:"title"       validate:"required,min=1"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// UpdateItemRequest defines the payload for a partial item update.
// Absent (or null) fields are left unchanged.
type UpdateItemRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// EnqueueResponse is returned by complete-all with 202 Accepted.
// CheckStatus is the path to poll for the job's outcome.
type EnqueueResponse struct {
	JobID       string `json:"job_id"`
	CheckStatus string `json:"check_status"`
}

// JobResponse is the public snapshot of a job's status record.
type JobResponse struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// jobToResponse converts a job record to its public shape.
func jobToResponse(job *task.Job) JobResponse {
	return JobResponse{
		ID:     job.ID,
		Status: string(job.Status),
		Result: job.Result,
		Error:  job.Error,
	}
}
