package transactions

import "github.com/shopspring/decimal"

const DateFormat = "2006-01-02"

type CreateTransactionRequest struct {
	User            string   `json:"user" validate:"required,uuid4"`
	Amount          *float64 `json:"amount" validate:"required,gte=0"`
	TransactionType string   `json:"transaction_type" validate:"required,oneof=income expense"`
	Category        string   `json:"category" validate:"required,max=50"`
	Date            string   `json:"date" validate:"required,datetime=2006-01-02"`
}

// UpdateTransactionRequest carries a partial patch: only non-nil fields
// overwrite the stored record.
type UpdateTransactionRequest struct {
	User            *string  `json:"user" validate:"omitempty,uuid4"`
	Amount          *float64 `json:"amount" validate:"omitempty,gte=0"`
	TransactionType *string  `json:"transaction_type" validate:"omitempty,oneof=income expense"`
	Category        *string  `json:"category" validate:"omitempty,min=1,max=50"`
	Date            *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type TransactionResponse struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date"`
	TransactionType string          `json:"transaction_type"`
	Category        string          `json:"category"`
	User            string          `json:"user"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}
