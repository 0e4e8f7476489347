package protocols

type Regimen struct {
	Criterion string
	Treatment string
}

type Section struct {
	Title       string
	Description string
	Heading     string
	Regimens    []Regimen
}

type ReferenceGuide struct {
	Title    string
	Source   string
	Sections []Section
}

// Reference is the static treatment guide shown next to the calculator.
func Reference() ReferenceGuide {
	return ReferenceGuide{
		Title:  "Protocolos Clínicos",
		Source: "Diretrizes do Ministério da Saúde (PCDT 2022)",
		Sections: []Section{
			{
				Title: "Sífilis Congênita (A50)",
				Description: "Infecção disseminada pelo Treponema pallidum transmitida da mãe para o feto via transplacentária. " +
					"O tratamento da mãe deve ser feito com Penicilina G Benzatina.",
				Heading: "Critérios de Tratamento do Neonato",
				Regimens: []Regimen{
					{Criterion: "Neurosífilis / LCR Alterado", Treatment: "Penicilina Cristalina IV, 10 dias."},
					{Criterion: "Sinais Clínicos / Liquor Normal", Treatment: "Penicilina Procaína IM, 10 dias."},
					{Criterion: "Assintomático / Mãe Inadequada", Treatment: "Penicilina Benzatina IM, Dose Única."},
				},
			},
			{
				Title:   "Sífilis Adquirida (Adulto)",
				Heading: "Esquemas Terapêuticos",
				Regimens: []Regimen{
					{Criterion: "Primária/Secundária/Latente Recente", Treatment: "Penicilina G Benzatina 2.400.000 UI, IM, Dose Única."},
					{Criterion: "Latente Tardia/Terciária", Treatment: "Penicilina G Benzatina 2.400.000 UI, IM, semanal por 3 semanas (Total 7.200.000 UI)."},
					{Criterion: "Neurossífilis", Treatment: "Penicilina G Cristalina 18-24 milhões UI/dia, IV, por 14 dias."},
				},
			},
		},
	}
}
