package services

import (
	"context"

	"github.com/earnbuddy/backend/internal/core/domain"
	"github.com/earnbuddy/backend/internal/dto"
	"github.com/shopspring/decimal"
)

// PaymentIntentProvider is the port to the external payment provider. The
// amount is in minor units (cents) with an ISO currency code; the returned
// secret is usable by the buyer's client to confirm the payment.
type PaymentIntentProvider interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (clientSecret string, err error)
}

// PaymentSvcFacade defines the payment ledger operations.
type PaymentSvcFacade interface {
	// CreatePaymentIntent asks the external provider for a confirmation secret
	// for a purchase of the given dollar price. No local state changes.
	CreatePaymentIntent(ctx context.Context, price decimal.Decimal) (string, error)

	// RecordPayment credits the buyer's coins and inserts the payment record
	// as one unit, after the external payment was confirmed client-side.
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, buyerEmail string) (*domain.Payment, error)

	// ListPayments retrieves all payments recorded for the given buyer.
	ListPayments(ctx context.Context, email string) ([]domain.Payment, error)
}
