package services

import (
	portsrepo "github.com/earnbuddy/backend/internal/core/ports/repositories"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/earnbuddy/backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, intentProvider portssvc.PaymentIntentProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(cfg, repos.UserRepo)
	container.Task = NewTaskService(repos.TaskRepo)
	container.Submission = NewSubmissionService(repos.SubmissionRepo, repos.TaskRepo)
	container.Withdrawal = NewWithdrawalService(repos.WithdrawalRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, intentProvider)
	container.Stats = NewStatsService(repos.StatsRepo)
	container.Review = NewReviewService(repos.ReviewRepo)

	// Token issuance needs the user service to reject unknown emails
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
