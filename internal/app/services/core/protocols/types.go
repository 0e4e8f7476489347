package protocols

import (
	"proacolhe-service/internal/app/models"
	"time"
)

type Pathway string

const (
	PathwayCongenital Pathway = "congenita"
	PathwayAcquired   Pathway = "adquirida"
)

const (
	StageRecent        = "recente"
	StageLate          = "tardia"
	StageIndeterminate = "indeterminada"
)

const (
	ProtocolCrystalline10Days = "CRISTALINA_10D"
	ProtocolProcaine10Days    = "PROCAINA_10D"
	ProtocolBenzathineSingle  = "BENZATINA_DU"
	ProtocolFollowUpOnly      = "DISPENSAR_TRATAMENTO"
	ProtocolAllergy           = "ALERGIA"
	ProtocolAcquiredRecent    = "ADQUIRIDA_RECENTE"
	ProtocolAcquiredLate      = "ADQUIRIDA_TARDIA"
)

type CongenitalInput struct {
	PrincipalCID              string
	CSFAltered                bool
	ClinicalSigns             bool
	MaternalTreatmentAdequate bool
	EvaluationNormal          bool
}

type AcquiredInput struct {
	Stage             string
	Pregnant          bool
	PenicillinAllergy bool
}

// Input holds everything a protocol evaluation depends on. ReferenceTime
// is the instant ages are measured against.
type Input struct {
	Pathway       Pathway
	WeightKg      float64
	HeightM       float64
	BirthDate     string
	ReferenceTime time.Time
	Congenital    CongenitalInput
	Acquired      AcquiredInput
}

type AgeDetails struct {
	Text      string
	Years     int
	Months    int
	Days      int
	DaysTotal int
}

type Result struct {
	Pathway      Pathway
	ProtocolID   string
	Medication   string
	Dosage       string
	Duration     string
	Warnings     []string
	Notes        string
	SuggestedCID string
	BMI          string
	Age          AgeDetails
}

type Draft struct {
	Notes        string
	Diagnosis    models.Diagnosis
	Prescription models.Prescription
}

// DefaultCongenitalInput mirrors an untouched evaluation form.
func DefaultCongenitalInput() CongenitalInput {
	return CongenitalInput{
		PrincipalCID:     "A50.0",
		EvaluationNormal: true,
	}
}
