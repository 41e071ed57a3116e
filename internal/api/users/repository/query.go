package userRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			first_name,
			last_name,
			email,
			created_at,
			updated_at
		) VALUES (
			:id,
			:first_name,
			:last_name,
			:email,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			first_name,
			last_name,
			email,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetAllUsers = `
		SELECT
			id,
			first_name,
			last_name,
			email,
			created_at,
			updated_at
		FROM users
		ORDER BY created_at ASC
	`

	queryUpdateUser = `
		UPDATE users
		SET
			first_name = :first_name,
			last_name = :last_name,
			email = :email,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteUser = `
		DELETE FROM users
		WHERE id = :id
	`

	queryDeleteTransactionsByUserID = `
		DELETE FROM transactions
		WHERE user_id = :user_id
	`
)
