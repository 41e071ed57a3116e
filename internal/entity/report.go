package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionReport is immutable once created: it captures the aggregate of
// all transactions whose date falls within [StartDate, EndDate] inclusive.
type TransactionReport struct {
	ID           string          `db:"id"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	TotalIncome  decimal.Decimal `db:"total_income"`
	TotalExpense decimal.Decimal `db:"total_expense"`
	NetIncome    decimal.Decimal `db:"net_income"`
	CreatedAt    time.Time       `db:"created_at"`
}
