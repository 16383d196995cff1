package dto

import (
	"github.com/earnbuddy/backend/internal/core/domain"
)

// CreateWithdrawalRequest is the body of POST /withdraw.
type CreateWithdrawalRequest struct {
	WithdrawCoin  int64  `json:"withdrawCoin" binding:"required,gt=0"`
	PaymentSystem string `json:"paymentSystem" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
}

// WithdrawalResponse is the API representation of a withdrawal request.
type WithdrawalResponse struct {
	WithdrawalID  string `json:"withdrawalID"`
	WorkerEmail   string `json:"workerEmail"`
	WorkerName    string `json:"workerName"`
	WithdrawCoin  int64  `json:"withdrawCoin"`
	PaymentSystem string `json:"paymentSystem"`
	AccountNumber string `json:"accountNumber"`
}

// ToWithdrawalResponse maps a domain withdrawal to its API representation.
func ToWithdrawalResponse(w *domain.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		WithdrawalID:  w.WithdrawalID,
		WorkerEmail:   w.WorkerEmail,
		WorkerName:    w.WorkerName,
		WithdrawCoin:  w.WithdrawCoin,
		PaymentSystem: w.PaymentSystem,
		AccountNumber: w.AccountNumber,
	}
}

// ToWithdrawalResponses maps a slice of domain withdrawals.
func ToWithdrawalResponses(ws []domain.Withdrawal) []WithdrawalResponse {
	out := make([]WithdrawalResponse, len(ws))
	for i := range ws {
		out[i] = ToWithdrawalResponse(&ws[i])
	}
	return out
}
