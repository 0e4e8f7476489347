package queries

const (
	// Insert Queries
	CreateUserQuery = `
		INSERT INTO users (
			id, name, sus_number, role, username, password, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	// Select Queries
	FindUserByFieldQueryTemplate = `
		SELECT id, name, sus_number, role, username, password, created_at, updated_at
		FROM users
		WHERE %s = ?
	`

	FindAllUsersQuery = `
		SELECT id, name, sus_number, role, username, password, created_at, updated_at
		FROM users
		ORDER BY name COLLATE NOCASE, id
	`

	CountUsersQuery = `SELECT COUNT(*) FROM users`

	// Update Queries
	UpdateUserQuery = `
		UPDATE users
		SET name = ?, sus_number = ?, role = ?, username = ?, password = ?, updated_at = ?
		WHERE id = ?
	`

	// Delete Queries
	DeleteUserByIDQuery = `DELETE FROM users WHERE id = ?`

	DeleteUsersExceptQuery = `DELETE FROM users WHERE id <> ?`
)
