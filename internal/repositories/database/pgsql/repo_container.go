package pgsql

import (
	portsrepo "github.com/earnbuddy/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       newPgxUserRepository(dbPool),
		TaskRepo:       newPgxTaskRepository(dbPool),
		SubmissionRepo: newPgxSubmissionRepository(dbPool),
		WithdrawalRepo: newPgxWithdrawalRepository(dbPool),
		PaymentRepo:    newPgxPaymentRepository(dbPool),
		ReviewRepo:     newPgxReviewRepository(dbPool),
		StatsRepo:      newStatsRepository(dbPool),
	}
}
