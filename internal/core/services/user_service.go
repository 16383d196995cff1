package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/earnbuddy/backend/internal/core/domain"
	portsrepo "github.com/earnbuddy/backend/internal/core/ports/repositories"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/earnbuddy/backend/internal/dto"
	"github.com/earnbuddy/backend/internal/platform/config"
	"github.com/google/uuid"
)

// userServiceImpl implements the UserSvcFacade interface
type userServiceImpl struct {
	BaseService
	userRepo            portsrepo.UserRepositoryFacade
	defaultCreatorCoins int64
	defaultWorkerCoins  int64
}

// NewUserService creates a new user service backed by the given repository.
func NewUserService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userServiceImpl{
		userRepo:            userRepo,
		defaultCreatorCoins: cfg.DefaultCreatorCoins,
		defaultWorkerCoins:  cfg.DefaultWorkerCoins,
	}
}

var _ portssvc.UserSvcFacade = (*userServiceImpl)(nil)

// defaultCoinsForRole returns the coin grant a fresh sign-up receives.
func (s *userServiceImpl) defaultCoinsForRole(role domain.Role) int64 {
	switch role {
	case domain.RoleTaskCreator:
		return s.defaultCreatorCoins
	case domain.RoleWorker:
		return s.defaultWorkerCoins
	default:
		return 0
	}
}

func (s *userServiceImpl) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, bool, error) {
	role := domain.Role(req.Role)
	if req.Role == "" {
		role = domain.RoleUnset
	}

	now := time.Now()
	user := domain.User{
		UserID:   uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Role:     role,
		Coins:    s.defaultCoinsForRole(role),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, inserted, err := s.userRepo.SaveUserIfAbsent(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to register user", slog.String("email", req.Email))
		return nil, false, fmt.Errorf("failed to register user: %w", err)
	}
	if inserted {
		s.LogInfo(ctx, "New user registered",
			slog.String("email", saved.Email),
			slog.String("role", string(saved.Role)),
			slog.Int64("coins", saved.Coins))
	}
	return saved, inserted, nil
}

func (s *userServiceImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if role != "" {
		users, err := s.userRepo.FindUsersByRole(ctx, role)
		if err != nil {
			return nil, fmt.Errorf("failed to list users by role: %w", err)
		}
		return users, nil
	}
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userServiceImpl) ListTopEarners(ctx context.Context, limit int) ([]domain.User, error) {
	users, err := s.userRepo.FindTopEarners(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top earners: %w", err)
	}
	return users, nil
}

func (s *userServiceImpl) SetUserRole(ctx context.Context, userID string, role domain.Role) error {
	if err := s.userRepo.SetRole(ctx, userID, role); err != nil {
		s.LogError(ctx, err, "Failed to set user role",
			slog.String("user_id", userID),
			slog.String("role", string(role)))
		return fmt.Errorf("failed to set user role: %w", err)
	}
	s.LogInfo(ctx, "User role updated", slog.String("user_id", userID), slog.String("role", string(role)))
	return nil
}

func (s *userServiceImpl) SetUserCoins(ctx context.Context, userID string, coins int64) error {
	if err := s.userRepo.SetCoins(ctx, userID, coins); err != nil {
		s.LogError(ctx, err, "Failed to set user coins", slog.String("user_id", userID))
		return fmt.Errorf("failed to set user coins: %w", err)
	}
	s.LogInfo(ctx, "User coins overwritten", slog.String("user_id", userID), slog.Int64("coins", coins))
	return nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}
