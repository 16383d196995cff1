package domain

// TaskStatus tracks the lifecycle of a posted task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task is a paid micro-task posted by a task creator. The total reserved
// coins (Quantity * PayAmount) are debited from the creator at creation and
// refunded at deletion.
type Task struct {
	TaskID         string     `json:"taskID"`
	CreatorEmail   string     `json:"creatorEmail"`
	Title          string     `json:"title"`
	Details        string     `json:"details"`
	Quantity       int64      `json:"quantity"`
	PayAmount      int64      `json:"payAmount"`
	SubmitInfo     string     `json:"submitInfo"`
	ImageURL       string     `json:"imageURL,omitempty"`
	CompletionDate string     `json:"completionDate,omitempty"`
	Status         TaskStatus `json:"status"`
	AuditFields
}

// ReservedCoins returns the total coin amount a task locks up from its creator.
func (t Task) ReservedCoins() int64 {
	return t.Quantity * t.PayAmount
}
