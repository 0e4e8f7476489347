package models

type Diagnosis struct {
	CID         string `json:"cid" bson:"cid"`
	Description string `json:"description" bson:"description"`
}

type Prescription struct {
	Medication string `json:"medication" bson:"medication"`
	Dosage     string `json:"dosage" bson:"dosage"`
}

// Consultation is immutable once registered. Date is RFC3339 in UTC with millisecond precision.
type Consultation struct {
	ID           string       `json:"id" bson:"_id"`
	PatientID    string       `json:"patient_id" bson:"patientId"`
	DoctorID     string       `json:"doctor_id" bson:"doctorId"`
	Date         string       `json:"date" bson:"date"`
	Diagnosis    Diagnosis    `json:"diagnosis" bson:"diagnosis"`
	Notes        string       `json:"notes" bson:"notes"`
	Prescription Prescription `json:"prescription" bson:"prescription"`
}
