package domain

import "github.com/shopspring/decimal"

// WorkerStats is the read-only rollup shown on a worker's dashboard.
type WorkerStats struct {
	Coins            int64 `json:"coins"`
	TotalSubmissions int64 `json:"totalSubmissions"`
	TotalEarnings    int64 `json:"totalEarnings"`
}

// CreatorStats is the read-only rollup shown on a task creator's dashboard.
type CreatorStats struct {
	Coins           int64           `json:"coins"`
	PendingTaskSlots int64          `json:"pendingTaskSlots"`
	TotalPaid       decimal.Decimal `json:"totalPaid"`
}

// AdminStats is the platform-wide rollup shown on the admin dashboard.
type AdminStats struct {
	TotalUsers    int64           `json:"totalUsers"`
	TotalCoins    int64           `json:"totalCoins"`
	TotalPayments decimal.Decimal `json:"totalPayments"`
}
