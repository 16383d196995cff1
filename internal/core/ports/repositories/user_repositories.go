package repositories

import (
	"context"

	"github.com/earnbuddy/backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a specific user by their unique email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves every user record.
	FindUsers(ctx context.Context) ([]domain.User, error)

	// FindUsersByRole retrieves all users holding the given role.
	FindUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error)

	// FindTopEarners retrieves up to limit users ordered by coin balance descending.
	FindTopEarners(ctx context.Context, limit int) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUserIfAbsent inserts the user unless a record with the same email
	// already exists. It returns the stored record and whether an insert
	// happened; an existing record is returned unchanged.
	SaveUserIfAbsent(ctx context.Context, user domain.User) (*domain.User, bool, error)

	// SetRole updates a user's role.
	SetRole(ctx context.Context, userID string, role domain.Role) error

	// SetCoins overwrites a user's coin balance.
	SetCoins(ctx context.Context, userID string, coins int64) error
}

// UserLifecycleManager defines operations for managing user lifecycle.
type UserLifecycleManager interface {
	// DeleteUser removes a user record.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
