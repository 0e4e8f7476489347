package responses

type Patient struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SusNumber string `json:"sus_number"`
	BirthDate string `json:"birth_date"`
	Age       int    `json:"age"`
}

type PatientPathway struct {
	PatientID string     `json:"patient_id"`
	Pathway   string     `json:"pathway"`
	Diagnosis Diagnosis  `json:"diagnosis"`
	Age       AgeDetails `json:"age"`
}
