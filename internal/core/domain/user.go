package domain

// Role is the platform role assigned to a user record.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleTaskCreator Role = "taskCreator"
	RoleWorker      Role = "worker"
	RoleUnset       Role = "unset"
)

// IsValid reports whether r is one of the known platform roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTaskCreator, RoleWorker, RoleUnset:
		return true
	}
	return false
}

// User represents a platform user. Coins is the single source of truth for
// a user's balance; every ledger references users by email and never owns
// balance state itself.
type User struct {
	UserID   string `json:"userID"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL,omitempty"`
	Role     Role   `json:"role"`
	Coins    int64  `json:"coins"`
	AuditFields
}
