package domain

// SubmissionStatus is the review state of a worker submission.
// The only legal transitions are pending->approved and pending->rejected;
// both are terminal.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// Submission is a worker's claim of completed work against a task.
// Task title, creator and pay amount are denormalized at creation time so
// the record survives task deletion.
type Submission struct {
	SubmissionID string           `json:"submissionID"`
	TaskID       string           `json:"taskID"`
	TaskTitle    string           `json:"taskTitle"`
	WorkerEmail  string           `json:"workerEmail"`
	WorkerName   string           `json:"workerName"`
	CreatorEmail string           `json:"creatorEmail"`
	PayAmount    int64            `json:"payAmount"`
	Details      string           `json:"details"`
	Status       SubmissionStatus `json:"status"`
	AuditFields
}
