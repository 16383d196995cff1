package models

// Withdrawal is the database representation of a cash-out request.
type Withdrawal struct {
	WithdrawalID  string `db:"withdrawal_id"`
	WorkerEmail   string `db:"worker_email"`
	WorkerName    string `db:"worker_name"`
	WithdrawCoin  int64  `db:"withdraw_coin"`
	PaymentSystem string `db:"payment_system"`
	AccountNumber string `db:"account_number"`
	AuditFields
}
