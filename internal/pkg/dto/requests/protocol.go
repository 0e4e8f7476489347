package requests

type CongenitalProtocol struct {
	PrincipalCID              string `json:"principal_cid" validate:"max=16"`
	CSFAltered                bool   `json:"csf_altered"`
	ClinicalSigns             bool   `json:"clinical_signs"`
	MaternalTreatmentAdequate bool   `json:"maternal_treatment_adequate"`
	EvaluationNormal          *bool  `json:"evaluation_normal"`
}

type AcquiredProtocol struct {
	Stage             string `json:"stage" validate:"omitempty,oneof=recente tardia indeterminada"`
	Pregnant          bool   `json:"pregnant"`
	PenicillinAllergy bool   `json:"penicillin_allergy"`
}

// Weight, height and birth date are checked by the protocol engine itself,
// which answers with its own incomplete input message.
type EvaluateProtocol struct {
	Pathway    string              `json:"pathway" validate:"required,oneof=congenita adquirida"`
	PatientID  string              `json:"patient_id"`
	WeightKg   float64             `json:"weight_kg"`
	HeightM    float64             `json:"height_m"`
	BirthDate  string              `json:"birth_date" validate:"omitempty,date"`
	Congenital *CongenitalProtocol `json:"congenital"`
	Acquired   *AcquiredProtocol   `json:"acquired"`
}

type ConsultationDraft struct {
	Notes        string       `json:"notes"`
	Diagnosis    Diagnosis    `json:"diagnosis"`
	Prescription Prescription `json:"prescription"`
}

type ApplyProtocol struct {
	Input EvaluateProtocol  `json:"input"`
	Draft ConsultationDraft `json:"draft"`
}
