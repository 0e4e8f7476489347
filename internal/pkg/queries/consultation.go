package queries

const (
	CreateConsultationQuery = `
		INSERT INTO consultations (
			id, patient_id, doctor_id, date, diagnosis_cid, diagnosis_description,
			notes, medication, dosage
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	FindConsultationByIDQuery = `
		SELECT id, patient_id, doctor_id, date, diagnosis_cid, diagnosis_description,
			notes, medication, dosage
		FROM consultations
		WHERE id = ?
	`

	// Millisecond UTC timestamps sort lexically in chronological order.
	FindAllConsultationsQuery = `
		SELECT id, patient_id, doctor_id, date, diagnosis_cid, diagnosis_description,
			notes, medication, dosage
		FROM consultations
		ORDER BY date DESC, id DESC
	`

	CountConsultationsQuery = `SELECT COUNT(*) FROM consultations`

	CountConsultationsByCIDPrefixQuery = `
		SELECT COUNT(*) FROM consultations
		WHERE diagnosis_cid LIKE ? || '%'
	`

	DeleteAllConsultationsQuery = `DELETE FROM consultations`
)
