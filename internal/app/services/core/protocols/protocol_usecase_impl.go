package protocols

import (
	"context"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/dto/responses"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type protocolUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
	now               func() time.Time
}

func NewProtocolUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.ProtocolUsecase {
	return &protocolUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (uc *protocolUsecase) EvaluateProtocol(ctx context.Context, request *requests.EvaluateProtocol) (*responses.ProtocolResult, error) {
	input, err := uc.buildInput(ctx, request)
	if err != nil {
		return nil, err
	}

	result, err := Evaluate(input)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("protocolUsecase.EvaluateProtocol succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPathwayKey, string(result.Pathway)),
		zap.String(constvars.LoggingProtocolIDKey, result.ProtocolID),
	)

	response := mapResultToResponse(result)
	return &response, nil
}

func (uc *protocolUsecase) ApplyProtocol(ctx context.Context, request *requests.ApplyProtocol) (*responses.AppliedProtocol, error) {
	input, err := uc.buildInput(ctx, &request.Input)
	if err != nil {
		return nil, err
	}

	result, err := Evaluate(input)
	if err != nil {
		return nil, err
	}

	draft := ApplyToDraft(input, result, Draft{
		Notes: request.Draft.Notes,
		Diagnosis: models.Diagnosis{
			CID:         request.Draft.Diagnosis.CID,
			Description: request.Draft.Diagnosis.Description,
		},
		Prescription: models.Prescription{
			Medication: request.Draft.Prescription.Medication,
			Dosage:     request.Draft.Prescription.Dosage,
		},
	})

	uc.Log.Info("protocolUsecase.ApplyProtocol succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingProtocolIDKey, result.ProtocolID),
		zap.String(constvars.LoggingCIDKey, draft.Diagnosis.CID),
	)

	return &responses.AppliedProtocol{
		Result: mapResultToResponse(result),
		Draft: responses.ConsultationDraft{
			Notes: draft.Notes,
			Diagnosis: responses.Diagnosis{
				CID:         draft.Diagnosis.CID,
				Description: draft.Diagnosis.Description,
			},
			Prescription: responses.Prescription{
				Medication: draft.Prescription.Medication,
				Dosage:     draft.Prescription.Dosage,
			},
		},
	}, nil
}

func (uc *protocolUsecase) GetReference(ctx context.Context) *responses.ProtocolReference {
	guide := Reference()

	sections := make([]responses.ProtocolSection, 0, len(guide.Sections))
	for _, section := range guide.Sections {
		regimens := make([]responses.ProtocolRegimen, 0, len(section.Regimens))
		for _, regimen := range section.Regimens {
			regimens = append(regimens, responses.ProtocolRegimen{
				Criterion: regimen.Criterion,
				Treatment: regimen.Treatment,
			})
		}
		sections = append(sections, responses.ProtocolSection{
			Title:       section.Title,
			Description: section.Description,
			Heading:     section.Heading,
			Regimens:    regimens,
		})
	}

	return &responses.ProtocolReference{
		Title:    guide.Title,
		Source:   guide.Source,
		Sections: sections,
	}
}

// buildInput fills the birth date from the patient record when the request
// names a patient and leaves the date empty.
func (uc *protocolUsecase) buildInput(ctx context.Context, request *requests.EvaluateProtocol) (*Input, error) {
	input := &Input{
		Pathway:       Pathway(request.Pathway),
		WeightKg:      request.WeightKg,
		HeightM:       request.HeightM,
		BirthDate:     request.BirthDate,
		ReferenceTime: uc.now(),
		Congenital:    DefaultCongenitalInput(),
		Acquired:      AcquiredInput{Stage: StageRecent},
	}

	if input.BirthDate == "" && request.PatientID != "" {
		patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, exceptions.ErrPatientNotExist(nil)
		}
		input.BirthDate = patient.BirthDate
	}

	if congenital := request.Congenital; congenital != nil {
		if congenital.PrincipalCID != "" {
			input.Congenital.PrincipalCID = congenital.PrincipalCID
		}
		input.Congenital.CSFAltered = congenital.CSFAltered
		input.Congenital.ClinicalSigns = congenital.ClinicalSigns
		input.Congenital.MaternalTreatmentAdequate = congenital.MaternalTreatmentAdequate
		if congenital.EvaluationNormal != nil {
			input.Congenital.EvaluationNormal = *congenital.EvaluationNormal
		}
	}

	if acquired := request.Acquired; acquired != nil {
		if acquired.Stage != "" {
			input.Acquired.Stage = acquired.Stage
		}
		input.Acquired.Pregnant = acquired.Pregnant
		input.Acquired.PenicillinAllergy = acquired.PenicillinAllergy
	}

	return input, nil
}

func mapResultToResponse(result *Result) responses.ProtocolResult {
	return responses.ProtocolResult{
		Pathway:      string(result.Pathway),
		ProtocolID:   result.ProtocolID,
		Medication:   result.Medication,
		Dosage:       result.Dosage,
		Duration:     result.Duration,
		Warnings:     result.Warnings,
		Notes:        result.Notes,
		SuggestedCID: result.SuggestedCID,
		BMI:          result.BMI,
		Age:          MapAgeToResponse(result.Age),
	}
}

func MapAgeToResponse(age AgeDetails) responses.AgeDetails {
	return responses.AgeDetails{
		Text:      age.Text,
		Years:     age.Years,
		Months:    age.Months,
		Days:      age.Days,
		DaysTotal: age.DaysTotal,
	}
}
