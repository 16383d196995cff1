package dto

import (
	"github.com/earnbuddy/backend/internal/core/domain"
)

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	Title          string `json:"title" binding:"required"`
	Details        string `json:"details" binding:"required"`
	Quantity       int64  `json:"quantity" binding:"required,gt=0"`
	PayAmount      int64  `json:"payAmount" binding:"required,gt=0"`
	SubmitInfo     string `json:"submitInfo" binding:"required"`
	ImageURL       string `json:"imageURL" binding:"omitempty,url"`
	CompletionDate string `json:"completionDate"`
}

// UpdateTaskRequest is the body of PATCH /tasks/:id. Only these three fields
// are editable after creation; quantity and pay amount are frozen because the
// reserved coins were computed from them.
type UpdateTaskRequest struct {
	Title      string `json:"title" binding:"required"`
	Details    string `json:"details" binding:"required"`
	SubmitInfo string `json:"submitInfo" binding:"required"`
}

// ListTasksParams are the query parameters accepted by GET /tasks.
type ListTasksParams struct {
	CreatorEmail string `form:"creatorEmail" binding:"omitempty,email"`
}

// TaskResponse is the API representation of a task.
type TaskResponse struct {
	TaskID         string `json:"taskID"`
	CreatorEmail   string `json:"creatorEmail"`
	Title          string `json:"title"`
	Details        string `json:"details"`
	Quantity       int64  `json:"quantity"`
	PayAmount      int64  `json:"payAmount"`
	SubmitInfo     string `json:"submitInfo"`
	ImageURL       string `json:"imageURL,omitempty"`
	CompletionDate string `json:"completionDate,omitempty"`
	Status         string `json:"status"`
}

// ToTaskResponse maps a domain task to its API representation.
func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:         t.TaskID,
		CreatorEmail:   t.CreatorEmail,
		Title:          t.Title,
		Details:        t.Details,
		Quantity:       t.Quantity,
		PayAmount:      t.PayAmount,
		SubmitInfo:     t.SubmitInfo,
		ImageURL:       t.ImageURL,
		CompletionDate: t.CompletionDate,
		Status:         string(t.Status),
	}
}

// ToTaskResponses maps a slice of domain tasks.
func ToTaskResponses(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i := range tasks {
		out[i] = ToTaskResponse(&tasks[i])
	}
	return out
}
