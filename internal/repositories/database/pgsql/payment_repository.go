package pgsql

import (
	"context"
	"fmt"

	"github.com/earnbuddy/backend/internal/core/domain"
	portsrepo "github.com/earnbuddy/backend/internal/core/ports/repositories"
	"github.com/earnbuddy/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func toModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		Email:         d.Email,
		Coins:         d.Coins,
		Price:         d.Price,
		TransactionID: d.TransactionID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		Email:         m.Email,
		Coins:         m.Coins,
		Price:         m.Price,
		TransactionID: m.TransactionID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const paymentColumns = `payment_id, email, coins, price, transaction_id, created_at, last_updated_at`

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.Email,
		&m.Coins,
		&m.Price,
		&m.TransactionID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SavePaymentWithCredit credits the buyer's coin balance and inserts the
// payment record within a single DB transaction.
func (r *PgxPaymentRepository) SavePaymentWithCredit(ctx context.Context, payment domain.Payment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := adjustUserCoins(ctx, tx, payment.Email, payment.Coins); err != nil {
		return err
	}

	m := toModelPayment(payment)
	query := `
        INSERT INTO payments (payment_id, email, coins, price, transaction_id, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err = tx.Exec(ctx, query,
		m.PaymentID,
		m.Email,
		m.Coins,
		m.Price,
		m.TransactionID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPaymentRepository) FindPaymentsByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE email = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	ps := []domain.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		ps = append(ps, toDomainPayment(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}
	return ps, nil
}
