package repositories

import (
	"context"

	"github.com/earnbuddy/backend/internal/core/domain"
)

// PaymentReader defines read operations for payment data.
type PaymentReader interface {
	// FindPaymentsByEmail retrieves all payments recorded for a buyer.
	FindPaymentsByEmail(ctx context.Context, email string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data.
type PaymentWriter interface {
	// SavePaymentWithCredit credits the buyer's coin balance and inserts the
	// payment record as one unit.
	SavePaymentWithCredit(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
