package models

// User is the database representation of a platform user.
type User struct {
	UserID   string `db:"user_id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	PhotoURL string `db:"photo_url"`
	Role     string `db:"role"`
	Coins    int64  `db:"coins"`
	AuditFields
}
