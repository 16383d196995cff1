package domain

// Withdrawal is a worker's request to cash out coins. Approval debits the
// worker's balance and removes the record; there is no separate status field.
type Withdrawal struct {
	WithdrawalID  string `json:"withdrawalID"`
	WorkerEmail   string `json:"workerEmail"`
	WorkerName    string `json:"workerName"`
	WithdrawCoin  int64  `json:"withdrawCoin"`
	PaymentSystem string `json:"paymentSystem"`
	AccountNumber string `json:"accountNumber"`
	AuditFields
}
