package models

// Submission is the database representation of a worker submission.
type Submission struct {
	SubmissionID string `db:"submission_id"`
	TaskID       string `db:"task_id"`
	TaskTitle    string `db:"task_title"`
	WorkerEmail  string `db:"worker_email"`
	WorkerName   string `db:"worker_name"`
	CreatorEmail string `db:"creator_email"`
	PayAmount    int64  `db:"pay_amount"`
	Details      string `db:"details"`
	Status       string `db:"status"`
	AuditFields
}
