package responses

type DistributionItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Dashboard struct {
	TotalPatients      int                `json:"total_patients"`
	TotalConsultations int                `json:"total_consultations"`
	ConfirmedCases     int                `json:"confirmed_cases"`
	Distribution       []DistributionItem `json:"distribution"`
}
