package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/earnbuddy/backend/internal/apperrors"
	"github.com/earnbuddy/backend/internal/core/domain"
	portsrepo "github.com/earnbuddy/backend/internal/core/ports/repositories"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/earnbuddy/backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const paymentCurrency = "usd"

var centsPerDollar = decimal.NewFromInt(100)

// paymentServiceImpl implements the PaymentSvcFacade interface
type paymentServiceImpl struct {
	BaseService
	paymentRepo    portsrepo.PaymentRepositoryFacade
	intentProvider portssvc.PaymentIntentProvider
}

// NewPaymentService creates a new payment service. The intent provider is the
// external payment gateway adapter.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, intentProvider portssvc.PaymentIntentProvider) portssvc.PaymentSvcFacade {
	return &paymentServiceImpl{
		paymentRepo:    paymentRepo,
		intentProvider: intentProvider,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentServiceImpl)(nil)

func (s *paymentServiceImpl) CreatePaymentIntent(ctx context.Context, price decimal.Decimal) (string, error) {
	if price.LessThanOrEqual(decimal.Zero) {
		return "", fmt.Errorf("price must be positive: %w", apperrors.ErrValidation)
	}

	// The provider expects the amount in minor units (cents), rounded to a
	// whole number.
	amountMinor := price.Mul(centsPerDollar).Round(0).IntPart()

	clientSecret, err := s.intentProvider.CreateIntent(ctx, amountMinor, paymentCurrency)
	if err != nil {
		s.LogError(ctx, err, "Failed to create payment intent",
			slog.String("price", price.String()),
			slog.Int64("amount_minor", amountMinor))
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return clientSecret, nil
}

func (s *paymentServiceImpl) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, buyerEmail string) (*domain.Payment, error) {
	now := time.Now()
	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		Email:         buyerEmail,
		Coins:         req.Coins,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.paymentRepo.SavePaymentWithCredit(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to record payment",
			slog.String("buyer_email", buyerEmail),
			slog.String("transaction_id", req.TransactionID))
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("buyer_email", buyerEmail),
		slog.Int64("coins", req.Coins))
	return &payment, nil
}

func (s *paymentServiceImpl) ListPayments(ctx context.Context, email string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindPaymentsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
