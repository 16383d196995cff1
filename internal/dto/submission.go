package dto

import (
	"github.com/earnbuddy/backend/internal/core/domain"
)

// CreateSubmissionRequest is the body of POST /submission.
type CreateSubmissionRequest struct {
	TaskID  string `json:"taskID" binding:"required"`
	Details string `json:"details" binding:"required"`
}

// ListCreatorSubmissionsParams are the query parameters accepted by
// GET /submissionAll/:email.
type ListCreatorSubmissionsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

// SubmissionResponse is the API representation of a submission.
type SubmissionResponse struct {
	SubmissionID string `json:"submissionID"`
	TaskID       string `json:"taskID"`
	TaskTitle    string `json:"taskTitle"`
	WorkerEmail  string `json:"workerEmail"`
	WorkerName   string `json:"workerName"`
	CreatorEmail string `json:"creatorEmail"`
	PayAmount    int64  `json:"payAmount"`
	Details      string `json:"details"`
	Status       string `json:"status"`
}

// ToSubmissionResponse maps a domain submission to its API representation.
func ToSubmissionResponse(s *domain.Submission) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID: s.SubmissionID,
		TaskID:       s.TaskID,
		TaskTitle:    s.TaskTitle,
		WorkerEmail:  s.WorkerEmail,
		WorkerName:   s.WorkerName,
		CreatorEmail: s.CreatorEmail,
		PayAmount:    s.PayAmount,
		Details:      s.Details,
		Status:       string(s.Status),
	}
}

// ToSubmissionResponses maps a slice of domain submissions.
func ToSubmissionResponses(subs []domain.Submission) []SubmissionResponse {
	out := make([]SubmissionResponse, len(subs))
	for i := range subs {
		out[i] = ToSubmissionResponse(&subs[i])
	}
	return out
}
