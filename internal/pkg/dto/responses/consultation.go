package responses

type Diagnosis struct {
	CID         string `json:"cid"`
	Description string `json:"description"`
}

type Prescription struct {
	Medication string `json:"medication"`
	Dosage     string `json:"dosage"`
}

type Consultation struct {
	ID           string       `json:"id"`
	PatientID    string       `json:"patient_id"`
	DoctorID     string       `json:"doctor_id"`
	Date         string       `json:"date"`
	Diagnosis    Diagnosis    `json:"diagnosis"`
	Notes        string       `json:"notes"`
	Prescription Prescription `json:"prescription"`
}

type PrescriptionSummary struct {
	ConsultationID string `json:"consultation_id"`
	Date           string `json:"date"`
	PatientName    string `json:"patient_name"`
	DoctorName     string `json:"doctor_name"`
	CID            string `json:"cid"`
	Medication     string `json:"medication"`
	Dosage         string `json:"dosage"`
}

type PrescriptionDetail struct {
	Consultation Consultation `json:"consultation"`
	Patient      Patient      `json:"patient"`
	Doctor       StaffMember  `json:"doctor"`
}
