package requests

type Diagnosis struct {
	CID         string `json:"cid" validate:"max=16"`
	Description string `json:"description" validate:"max=200"`
}

type Prescription struct {
	Medication string `json:"medication" validate:"max=200"`
	Dosage     string `json:"dosage" validate:"max=500"`
}

type CreateConsultation struct {
	PatientID    string       `json:"patient_id" validate:"required"`
	Diagnosis    Diagnosis    `json:"diagnosis"`
	Notes        string       `json:"notes"`
	Prescription Prescription `json:"prescription"`
}
