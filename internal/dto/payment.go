package dto

import (
	"github.com/earnbuddy/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentIntentRequest is the body of POST /create-payment-intent.
// Price is the purchase amount in dollars.
type CreatePaymentIntentRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

// PaymentIntentResponse carries the provider's client-usable confirmation secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest is the body of POST /payments, sent after the external
// payment has been confirmed.
type RecordPaymentRequest struct {
	Coins         int64           `json:"coins" binding:"required,gt=0"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	TransactionID string          `json:"transactionID" binding:"required"`
}

// PaymentResponse is the API representation of a recorded payment.
type PaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	Email         string          `json:"email"`
	Coins         int64           `json:"coins"`
	Price         decimal.Decimal `json:"price"`
	TransactionID string          `json:"transactionID"`
}

// ToPaymentResponse maps a domain payment to its API representation.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		Email:         p.Email,
		Coins:         p.Coins,
		Price:         p.Price,
		TransactionID: p.TransactionID,
	}
}

// ToPaymentResponses maps a slice of domain payments.
func ToPaymentResponses(ps []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(ps))
	for i := range ps {
		out[i] = ToPaymentResponse(&ps[i])
	}
	return out
}
