package transactions

import "github.com/UnimaginableCat/fin-manager-project/pkg/response"

var (
	ErrTransactionNotFound    = response.NewError(404, "transaction not found")
	ErrInvalidTransactionType = response.NewError(400, "invalid transaction type")
	ErrNegativeAmount         = response.NewError(400, "amount must be non-negative")
	ErrInvalidCategory        = response.NewError(400, "invalid category")
	ErrInvalidDate            = response.NewError(400, "invalid transaction date")
	// ErrUserNotFound maps to 400: a transaction create referencing a missing
	// user is rejected as bad input, not as a missing transaction resource.
	ErrUserNotFound      = response.NewError(400, "user not found")
	ErrCreateTransaction = response.NewError(500, "failed to create transaction")
	ErrUpdateTransaction = response.NewError(500, "failed to update transaction")
	ErrDeleteTransaction = response.NewError(500, "failed to delete transaction")
)
