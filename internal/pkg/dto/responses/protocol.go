package responses

type AgeDetails struct {
	Text      string `json:"text"`
	Years     int    `json:"years"`
	Months    int    `json:"months"`
	Days      int    `json:"days"`
	DaysTotal int    `json:"days_total"`
}

type ProtocolResult struct {
	Pathway      string     `json:"pathway"`
	ProtocolID   string     `json:"protocol_id"`
	Medication   string     `json:"medication"`
	Dosage       string     `json:"dosage"`
	Duration     string     `json:"duration"`
	Warnings     []string   `json:"warnings"`
	Notes        string     `json:"notes"`
	SuggestedCID string     `json:"suggested_cid"`
	BMI          string     `json:"bmi"`
	Age          AgeDetails `json:"age"`
}

type ConsultationDraft struct {
	Notes        string       `json:"notes"`
	Diagnosis    Diagnosis    `json:"diagnosis"`
	Prescription Prescription `json:"prescription"`
}

type AppliedProtocol struct {
	Result ProtocolResult    `json:"result"`
	Draft  ConsultationDraft `json:"draft"`
}

type ProtocolRegimen struct {
	Criterion string `json:"criterion"`
	Treatment string `json:"treatment"`
}

type ProtocolSection struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Heading     string            `json:"heading"`
	Regimens    []ProtocolRegimen `json:"regimens"`
}

type ProtocolReference struct {
	Title    string            `json:"title"`
	Source   string            `json:"source"`
	Sections []ProtocolSection `json:"sections"`
}
