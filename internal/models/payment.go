package models

import "github.com/shopspring/decimal"

// Payment is the database representation of a confirmed coin purchase.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	Email         string          `db:"email"`
	Coins         int64           `db:"coins"`
	Price         decimal.Decimal `db:"price"`
	TransactionID string          `db:"transaction_id"`
	AuditFields
}
