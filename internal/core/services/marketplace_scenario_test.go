package services_test

import (
	"context"
	"testing"

	"github.com/earnbuddy/backend/internal/apperrors"
	"github.com/earnbuddy/backend/internal/core/domain"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/earnbuddy/backend/internal/core/services"
	"github.com/earnbuddy/backend/internal/dto"
	"github.com/earnbuddy/backend/internal/platform/config"
	"github.com/stretchr/testify/suite"
)

// memoryLedger is a shared in-memory backing store for the fake repositories
// below. Unlike the per-service mock tests, the scenario suite wires real
// services against fakes that actually move coins, so the full
// creator-funds-task / worker-earns / worker-withdraws story can be walked
// end to end and balances checked at every step.
type memoryLedger struct {
	usersByEmail map[string]*domain.User
	tasks        map[string]domain.Task
	submissions  map[string]domain.Submission
	withdrawals  map[string]domain.Withdrawal
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{
		usersByEmail: make(map[string]*domain.User),
		tasks:        make(map[string]domain.Task),
		submissions:  make(map[string]domain.Submission),
		withdrawals:  make(map[string]domain.Withdrawal),
	}
}

func (l *memoryLedger) adjustCoins(email string, delta int64) error {
	u, ok := l.usersByEmail[email]
	if !ok {
		return apperrors.ErrNotFound
	}
	if u.Coins+delta < 0 {
		return apperrors.ErrInsufficientFunds
	}
	u.Coins += delta
	return nil
}

type fakeUserRepo struct{ ledger *memoryLedger }

func (r *fakeUserRepo) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	for _, u := range r.ledger.usersByEmail {
		if u.UserID == userID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.ledger.usersByEmail[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindUsers(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.ledger.usersByEmail {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) FindUsersByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.ledger.usersByEmail {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindTopEarners(_ context.Context, limit int) ([]domain.User, error) {
	users, _ := r.FindUsers(context.Background())
	for i := 0; i < len(users); i++ {
		for j := i + 1; j < len(users); j++ {
			if users[j].Coins > users[i].Coins {
				users[i], users[j] = users[j], users[i]
			}
		}
	}
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (r *fakeUserRepo) SaveUserIfAbsent(_ context.Context, user domain.User) (*domain.User, bool, error) {
	if existing, ok := r.ledger.usersByEmail[user.Email]; ok {
		copied := *existing
		return &copied, false, nil
	}
	stored := user
	r.ledger.usersByEmail[user.Email] = &stored
	copied := stored
	return &copied, true, nil
}

func (r *fakeUserRepo) SetRole(_ context.Context, userID string, role domain.Role) error {
	for _, u := range r.ledger.usersByEmail {
		if u.UserID == userID {
			u.Role = role
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeUserRepo) SetCoins(_ context.Context, userID string, coins int64) error {
	for _, u := range r.ledger.usersByEmail {
		if u.UserID == userID {
			u.Coins = coins
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, userID string) error {
	for email, u := range r.ledger.usersByEmail {
		if u.UserID == userID {
			delete(r.ledger.usersByEmail, email)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeTaskRepo struct{ ledger *memoryLedger }

func (r *fakeTaskRepo) FindTaskByID(_ context.Context, taskID string) (*domain.Task, error) {
	t, ok := r.ledger.tasks[taskID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &t, nil
}

func (r *fakeTaskRepo) FindTasks(_ context.Context) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.ledger.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTaskRepo) FindTasksByCreator(_ context.Context, creatorEmail string) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.ledger.tasks {
		if t.CreatorEmail == creatorEmail {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) SaveTaskWithDebit(_ context.Context, task domain.Task) error {
	if err := r.ledger.adjustCoins(task.CreatorEmail, -task.ReservedCoins()); err != nil {
		return err
	}
	r.ledger.tasks[task.TaskID] = task
	return nil
}

func (r *fakeTaskRepo) UpdateTask(_ context.Context, task domain.Task) error {
	if _, ok := r.ledger.tasks[task.TaskID]; !ok {
		return apperrors.ErrNotFound
	}
	r.ledger.tasks[task.TaskID] = task
	return nil
}

func (r *fakeTaskRepo) DeleteTaskWithRefund(_ context.Context, task domain.Task) error {
	if _, ok := r.ledger.tasks[task.TaskID]; !ok {
		return apperrors.ErrNotFound
	}
	if err := r.ledger.adjustCoins(task.CreatorEmail, task.ReservedCoins()); err != nil {
		return err
	}
	delete(r.ledger.tasks, task.TaskID)
	return nil
}

type fakeSubmissionRepo struct{ ledger *memoryLedger }

func (r *fakeSubmissionRepo) FindSubmissionByID(_ context.Context, submissionID string) (*domain.Submission, error) {
	s, ok := r.ledger.submissions[submissionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &s, nil
}

func (r *fakeSubmissionRepo) FindSubmissionsByWorker(_ context.Context, workerEmail string) ([]domain.Submission, error) {
	var out []domain.Submission
	for _, s := range r.ledger.submissions {
		if s.WorkerEmail == workerEmail {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) FindSubmissionsByCreator(_ context.Context, creatorEmail string, status domain.SubmissionStatus) ([]domain.Submission, error) {
	var out []domain.Submission
	for _, s := range r.ledger.submissions {
		if s.CreatorEmail == creatorEmail && (status == "" || s.Status == status) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) FindSubmissions(_ context.Context) ([]domain.Submission, error) {
	var out []domain.Submission
	for _, s := range r.ledger.submissions {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSubmissionRepo) SaveSubmission(_ context.Context, submission domain.Submission) error {
	r.ledger.submissions[submission.SubmissionID] = submission
	return nil
}

func (r *fakeSubmissionRepo) ApproveSubmission(_ context.Context, submissionID string) (*domain.Submission, error) {
	s, ok := r.ledger.submissions[submissionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if s.Status != domain.SubmissionStatusPending {
		return nil, apperrors.ErrInvalidTransition
	}
	if err := r.ledger.adjustCoins(s.WorkerEmail, s.PayAmount); err != nil {
		return nil, err
	}
	s.Status = domain.SubmissionStatusApproved
	r.ledger.submissions[submissionID] = s
	return &s, nil
}

func (r *fakeSubmissionRepo) RejectSubmission(_ context.Context, submissionID string) (*domain.Submission, error) {
	s, ok := r.ledger.submissions[submissionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if s.Status != domain.SubmissionStatusPending {
		return nil, apperrors.ErrInvalidTransition
	}
	s.Status = domain.SubmissionStatusRejected
	r.ledger.submissions[submissionID] = s
	return &s, nil
}

type fakeWithdrawalRepo struct{ ledger *memoryLedger }

func (r *fakeWithdrawalRepo) FindWithdrawalByID(_ context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	w, ok := r.ledger.withdrawals[withdrawalID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &w, nil
}

func (r *fakeWithdrawalRepo) FindWithdrawalsByWorker(_ context.Context, workerEmail string) ([]domain.Withdrawal, error) {
	var out []domain.Withdrawal
	for _, w := range r.ledger.withdrawals {
		if w.WorkerEmail == workerEmail {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWithdrawalRepo) FindWithdrawals(_ context.Context) ([]domain.Withdrawal, error) {
	var out []domain.Withdrawal
	for _, w := range r.ledger.withdrawals {
		out = append(out, w)
	}
	return out, nil
}

func (r *fakeWithdrawalRepo) SaveWithdrawal(_ context.Context, withdrawal domain.Withdrawal) error {
	r.ledger.withdrawals[withdrawal.WithdrawalID] = withdrawal
	return nil
}

func (r *fakeWithdrawalRepo) ApproveWithdrawal(_ context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	w, ok := r.ledger.withdrawals[withdrawalID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if err := r.ledger.adjustCoins(w.WorkerEmail, -w.WithdrawCoin); err != nil {
		return nil, err
	}
	delete(r.ledger.withdrawals, withdrawalID)
	return &w, nil
}

type MarketplaceScenarioSuite struct {
	suite.Suite
	ctx         context.Context
	ledger      *memoryLedger
	users       portssvc.UserSvcFacade
	tasks       portssvc.TaskSvcFacade
	submissions portssvc.SubmissionSvcFacade
	withdrawals portssvc.WithdrawalSvcFacade
}

func (s *MarketplaceScenarioSuite) SetupTest() {
	s.ctx = context.Background()
	s.ledger = newMemoryLedger()
	cfg := &config.Config{DefaultCreatorCoins: 60, DefaultWorkerCoins: 10}
	s.users = services.NewUserService(cfg, &fakeUserRepo{ledger: s.ledger})
	s.tasks = services.NewTaskService(&fakeTaskRepo{ledger: s.ledger})
	s.submissions = services.NewSubmissionService(&fakeSubmissionRepo{ledger: s.ledger}, &fakeTaskRepo{ledger: s.ledger})
	s.withdrawals = services.NewWithdrawalService(&fakeWithdrawalRepo{ledger: s.ledger})
}

func (s *MarketplaceScenarioSuite) coins(email string) int64 {
	u, err := s.users.GetUserByEmail(s.ctx, email)
	s.Require().NoError(err)
	return u.Coins
}

// TestCreatorWorkerStory walks the full marketplace flow: a creator funds a
// task out of their starting grant, a worker submits and gets paid on
// approval, and the earnings leave the platform through an approved
// withdrawal. Balances are asserted after every coin movement.
func (s *MarketplaceScenarioSuite) TestCreatorWorkerStory() {
	creator, inserted, err := s.users.RegisterUser(s.ctx, dto.RegisterUserRequest{
		Name: "Cleo Creator", Email: "cleo@example.com", Role: "taskCreator",
	})
	s.Require().NoError(err)
	s.True(inserted)
	s.Equal(int64(60), creator.Coins)

	worker, _, err := s.users.RegisterUser(s.ctx, dto.RegisterUserRequest{
		Name: "Wes Worker", Email: "wes@example.com", Role: "worker",
	})
	s.Require().NoError(err)
	s.Equal(int64(10), worker.Coins)

	task, err := s.tasks.CreateTask(s.ctx, dto.CreateTaskRequest{
		Title: "Tag five photos", Details: "Label each image", Quantity: 5,
		PayAmount: 4, SubmitInfo: "Paste the gallery link",
	}, creator.Email)
	s.Require().NoError(err)
	s.Equal(int64(20), task.ReservedCoins())
	s.Equal(int64(40), s.coins(creator.Email))

	sub, err := s.submissions.CreateSubmission(s.ctx, dto.CreateSubmissionRequest{
		TaskID: task.TaskID, Details: "Gallery: https://example.com/g/1",
	}, worker)
	s.Require().NoError(err)
	s.Equal(domain.SubmissionStatusPending, sub.Status)
	s.Equal(task.PayAmount, sub.PayAmount)

	approved, err := s.submissions.ApproveSubmission(s.ctx, sub.SubmissionID, creator.Email)
	s.Require().NoError(err)
	s.Equal(domain.SubmissionStatusApproved, approved.Status)
	s.Equal(int64(14), s.coins(worker.Email))

	_, err = s.submissions.ApproveSubmission(s.ctx, sub.SubmissionID, creator.Email)
	s.ErrorIs(err, apperrors.ErrInvalidTransition)
	s.Equal(int64(14), s.coins(worker.Email), "double approval must not pay twice")

	paidWorker, err := s.users.GetUserByEmail(s.ctx, worker.Email)
	s.Require().NoError(err)
	wd, err := s.withdrawals.CreateWithdrawal(s.ctx, dto.CreateWithdrawalRequest{
		WithdrawCoin: 14, PaymentSystem: "paypal", AccountNumber: "wes-001",
	}, paidWorker)
	s.Require().NoError(err)

	settled, err := s.withdrawals.ApproveWithdrawal(s.ctx, wd.WithdrawalID)
	s.Require().NoError(err)
	s.Equal(int64(14), settled.WithdrawCoin)
	s.Equal(int64(0), s.coins(worker.Email))

	_, err = s.withdrawals.ApproveWithdrawal(s.ctx, wd.WithdrawalID)
	s.ErrorIs(err, apperrors.ErrNotFound, "repeat approval must not debit again")
	s.Equal(int64(0), s.coins(worker.Email))
}

// TestTaskDeleteRefundsReservation covers the create/delete round trip in
// isolation: deleting an unworked task returns the full reservation.
func (s *MarketplaceScenarioSuite) TestTaskDeleteRefundsReservation() {
	creator, _, err := s.users.RegisterUser(s.ctx, dto.RegisterUserRequest{
		Name: "Cleo Creator", Email: "cleo@example.com", Role: "taskCreator",
	})
	s.Require().NoError(err)

	task, err := s.tasks.CreateTask(s.ctx, dto.CreateTaskRequest{
		Title: "Short survey", Details: "Ten questions", Quantity: 2,
		PayAmount: 5, SubmitInfo: "Screenshot of the final page",
	}, creator.Email)
	s.Require().NoError(err)
	s.Equal(int64(50), s.coins(creator.Email))

	s.Require().NoError(s.tasks.DeleteTask(s.ctx, task.TaskID, creator.Email))
	s.Equal(int64(60), s.coins(creator.Email))
}

// TestOverdraftRejectedAcrossLedgers checks that neither task funding nor
// withdrawal requests can drive a balance negative.
func (s *MarketplaceScenarioSuite) TestOverdraftRejectedAcrossLedgers() {
	creator, _, err := s.users.RegisterUser(s.ctx, dto.RegisterUserRequest{
		Name: "Cleo Creator", Email: "cleo@example.com", Role: "taskCreator",
	})
	s.Require().NoError(err)

	_, err = s.tasks.CreateTask(s.ctx, dto.CreateTaskRequest{
		Title: "Big batch", Details: "Too rich for this account", Quantity: 100,
		PayAmount: 1, SubmitInfo: "n/a",
	}, creator.Email)
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
	s.Equal(int64(60), s.coins(creator.Email), "failed funding must not touch the balance")

	worker, _, err := s.users.RegisterUser(s.ctx, dto.RegisterUserRequest{
		Name: "Wes Worker", Email: "wes@example.com", Role: "worker",
	})
	s.Require().NoError(err)

	_, err = s.withdrawals.CreateWithdrawal(s.ctx, dto.CreateWithdrawalRequest{
		WithdrawCoin: 11, PaymentSystem: "paypal", AccountNumber: "wes-001",
	}, worker)
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
}

// TestDeleteCreatorWithLiveTasks checks that removing a user account never
// depends on the ledgers: a creator with a funded task can be deleted, and
// the task rows survive under the departed creator's email.
func (s *MarketplaceScenarioSuite) TestDeleteCreatorWithLiveTasks() {
	creator, _, err := s.users.RegisterUser(s.ctx, dto.RegisterUserRequest{
		Name: "Cleo Creator", Email: "cleo@example.com", Role: "taskCreator",
	})
	s.Require().NoError(err)

	task, err := s.tasks.CreateTask(s.ctx, dto.CreateTaskRequest{
		Title: "Tag five photos", Details: "Label each image", Quantity: 5,
		PayAmount: 4, SubmitInfo: "Paste the gallery link",
	}, creator.Email)
	s.Require().NoError(err)

	s.Require().NoError(s.users.DeleteUser(s.ctx, creator.UserID))

	_, err = s.users.GetUserByEmail(s.ctx, creator.Email)
	s.ErrorIs(err, apperrors.ErrNotFound)

	orphaned, err := s.tasks.GetTaskByID(s.ctx, task.TaskID)
	s.Require().NoError(err)
	s.Equal(creator.Email, orphaned.CreatorEmail)
}

func TestMarketplaceScenarioSuite(t *testing.T) {
	suite.Run(t, new(MarketplaceScenarioSuite))
}
