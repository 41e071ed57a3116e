package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			amount,
			date,
			transaction_type,
			category,
			user_id,
			created_at,
			updated_at
		) VALUES (
			:id,
			:amount,
			:date,
			:transaction_type,
			:category,
			:user_id,
			:created_at,
			:updated_at
		)
	`

	queryGetTransactionByID = `
		SELECT
			id,
			amount,
			date,
			transaction_type,
			category,
			user_id,
			created_at,
			updated_at
		FROM transactions
		WHERE id = :id
	`

	queryGetAllTransactions = `
		SELECT
			id,
			amount,
			date,
			transaction_type,
			category,
			user_id,
			created_at,
			updated_at
		FROM transactions
		ORDER BY created_at ASC
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			amount = :amount,
			date = :date,
			transaction_type = :transaction_type,
			category = :category,
			user_id = :user_id,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id
	`

	// COALESCE keeps an empty match set at zero instead of NULL, so the
	// net income subtraction never sees missing aggregates.
	queryGetPeriodTotals = `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'income'), 0)  AS total_income,
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'expense'), 0) AS total_expense
		FROM transactions
		WHERE date BETWEEN :start_date AND :end_date
	`
)
