package services

import (
	"context"

	"github.com/earnbuddy/backend/internal/core/domain"
	"github.com/earnbuddy/backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByEmail retrieves a user by their unique email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves all users, optionally filtered by role
	// (empty role means all).
	ListUsers(ctx context.Context, role domain.Role) ([]domain.User, error)

	// ListTopEarners retrieves the highest coin balances, descending.
	ListTopEarners(ctx context.Context, limit int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// RegisterUser performs the idempotent first-sign-in upsert. A new record
	// gets the role-dependent default coin grant; an existing record is
	// returned unchanged with inserted=false.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, bool, error)

	// SetUserRole updates a user's role (admin action).
	SetUserRole(ctx context.Context, userID string, role domain.Role) error

	// SetUserCoins overwrites a user's coin balance (admin action).
	SetUserCoins(ctx context.Context, userID string, coins int64) error
}

// UserLifecycleSvc defines operations for managing user lifecycle.
type UserLifecycleSvc interface {
	// DeleteUser removes a user record (admin action).
	DeleteUser(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
}
