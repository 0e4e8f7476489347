package queries

const (
	CreatePatientQuery = `
		INSERT INTO patients (
			id, name, sus_number, birth_date, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	FindPatientByIDQuery = `
		SELECT id, name, sus_number, birth_date, created_at, updated_at
		FROM patients
		WHERE id = ?
	`

	FindAllPatientsQuery = `
		SELECT id, name, sus_number, birth_date, created_at, updated_at
		FROM patients
		ORDER BY name COLLATE NOCASE, id
	`

	CountPatientsQuery = `SELECT COUNT(*) FROM patients`

	UpdatePatientQuery = `
		UPDATE patients
		SET name = ?, sus_number = ?, birth_date = ?, updated_at = ?
		WHERE id = ?
	`

	DeletePatientByIDQuery = `DELETE FROM patients WHERE id = ?`

	DeleteAllPatientsQuery = `DELETE FROM patients`
)
