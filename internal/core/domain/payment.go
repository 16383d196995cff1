package domain

import "github.com/shopspring/decimal"

// Payment records a coin purchase confirmed by the external payment provider.
// Price is the amount paid in dollars; Coins is the number of coins credited.
type Payment struct {
	PaymentID     string          `json:"paymentID"`
	Email         string          `json:"email"`
	Coins         int64           `json:"coins"`
	Price         decimal.Decimal `json:"price"`
	TransactionID string          `json:"transactionID"`
	AuditFields
}
