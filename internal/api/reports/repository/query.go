package reportRepository

const (
	queryCreateReport = `
		INSERT INTO transaction_reports (
			id,
			start_date,
			end_date,
			total_income,
			total_expense,
			net_income,
			created_at
		) VALUES (
			:id,
			:start_date,
			:end_date,
			:total_income,
			:total_expense,
			:net_income,
			:created_at
		)
	`

	queryGetReportByID = `
		SELECT
			id,
			start_date,
			end_date,
			total_income,
			total_expense,
			net_income,
			created_at
		FROM transaction_reports
		WHERE id = :id
	`

	queryGetAllReports = `
		SELECT
			id,
			start_date,
			end_date,
			total_income,
			total_expense,
			net_income,
			created_at
		FROM transaction_reports
		ORDER BY created_at ASC
	`
)
