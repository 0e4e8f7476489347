package patients

import (
	"context"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/app/services/core/protocols"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/dto/responses"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// Patients older than this many whole years are steered to the acquired
// pathway.
const congenitalAgeLimitYears = 12

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
	now               func() time.Time
}

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (uc *patientUsecase) ListPatients(ctx context.Context) ([]responses.Patient, error) {
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	response := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		response = append(response, mapPatientToResponse(&patients[i], now))
	}
	return response, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	patient, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	response := mapPatientToResponse(patient, uc.now())
	return &response, nil
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	patient := &models.Patient{
		ID:        utils.GenerateID(constvars.IDPrefixPatient),
		Name:      request.Name,
		SusNumber: request.SusNumber,
		BirthDate: request.BirthDate,
	}
	patient.SetCreatedAtUpdatedAt()

	if err := uc.PatientRepository.CreatePatient(ctx, patient); err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)

	response := mapPatientToResponse(patient, uc.now())
	return &response, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.Patient, error) {
	patient, err := uc.findPatient(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}

	patient.Name = request.Name
	patient.SusNumber = request.SusNumber
	patient.BirthDate = request.BirthDate
	patient.SetUpdatedAt()

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)

	response := mapPatientToResponse(patient, uc.now())
	return &response, nil
}

// DeletePatient leaves the patient's consultations in place; prescriptions
// referencing a deleted patient show an unknown name.
func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	if _, err := uc.findPatient(ctx, patientID); err != nil {
		return err
	}

	if err := uc.PatientRepository.DeleteByID(ctx, patientID); err != nil {
		return err
	}

	uc.Log.Info("patientUsecase.DeletePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

func (uc *patientUsecase) GetSuggestedPathway(ctx context.Context, patientID string) (*responses.PatientPathway, error) {
	patient, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	birth, err := utils.ParseDate(patient.BirthDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	age := protocols.DetailedAge(birth, uc.now())

	response := &responses.PatientPathway{
		PatientID: patient.ID,
		Pathway:   string(protocols.PathwayCongenital),
		Diagnosis: responses.Diagnosis{CID: "A50", Description: "Sífilis Congênita"},
		Age:       protocols.MapAgeToResponse(age),
	}
	if age.Years > congenitalAgeLimitYears {
		response.Pathway = string(protocols.PathwayAcquired)
		response.Diagnosis = responses.Diagnosis{CID: "A51", Description: "Sífilis Precoce"}
	}
	return response, nil
}

func (uc *patientUsecase) findPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}
	return patient, nil
}

func mapPatientToResponse(patient *models.Patient, now time.Time) responses.Patient {
	return responses.Patient{
		ID:        patient.ID,
		Name:      patient.Name,
		SusNumber: patient.SusNumber,
		BirthDate: patient.BirthDate,
		Age:       utils.AgeInYears(patient.BirthDate, now),
	}
}
