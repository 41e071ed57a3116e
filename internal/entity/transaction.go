package entity

import (
	"time"

	transactions "github.com/UnimaginableCat/fin-manager-project/internal/api/transactions"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

const CategoryMaxLength = 50

func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

type Transaction struct {
	ID              string          `db:"id"`
	Amount          decimal.Decimal `db:"amount"`
	Date            time.Time       `db:"date"`
	TransactionType string          `db:"transaction_type"`
	Category        string          `db:"category"`
	UserID          string          `db:"user_id"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.TransactionType) {
		return transactions.ErrInvalidTransactionType
	}

	if t.Amount.IsNegative() {
		return transactions.ErrNegativeAmount
	}

	if t.Category == "" || len(t.Category) > CategoryMaxLength {
		return transactions.ErrInvalidCategory
	}

	return nil
}
