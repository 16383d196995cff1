package models

// Task is the database representation of a posted micro-task.
type Task struct {
	TaskID         string `db:"task_id"`
	CreatorEmail   string `db:"creator_email"`
	Title          string `db:"title"`
	Details        string `db:"details"`
	Quantity       int64  `db:"quantity"`
	PayAmount      int64  `db:"pay_amount"`
	SubmitInfo     string `db:"submit_info"`
	ImageURL       string `db:"image_url"`
	CompletionDate string `db:"completion_date"`
	Status         string `db:"status"`
	AuditFields
}
