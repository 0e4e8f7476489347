package consultations

import (
	"context"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/dto/responses"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	defaultDiagnosis = models.Diagnosis{
		CID:         "A50",
		Description: "Sífilis Congênita",
	}
	defaultPrescription = models.Prescription{
		Medication: "Penicilina G Benzatina",
		Dosage:     "2.400.000 UI IM, dose única",
	}

	notifiableCIDPrefixes = []string{"A50", "A51", "A52", "A53"}
	notifiableCIDs        = []string{"O98.1"}
)

// IsNotifiableCID reports whether a diagnosis requires a SINAN compulsory
// notification.
func IsNotifiableCID(cid string) bool {
	cid = strings.ToUpper(strings.TrimSpace(cid))
	for _, prefix := range notifiableCIDPrefixes {
		if strings.HasPrefix(cid, prefix) {
			return true
		}
	}
	for _, code := range notifiableCIDs {
		if cid == code {
			return true
		}
	}
	return false
}

type consultationUsecase struct {
	ConsultationRepository contracts.ConsultationRepository
	PatientRepository      contracts.PatientRepository
	UserRepository         contracts.UserRepository
	NotificationPublisher  contracts.NotificationPublisher
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
	now                    func() time.Time
}

// NewConsultationUsecase accepts a nil publisher when notifications are
// disabled.
func NewConsultationUsecase(
	consultationRepository contracts.ConsultationRepository,
	patientRepository contracts.PatientRepository,
	userRepository contracts.UserRepository,
	notificationPublisher contracts.NotificationPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ConsultationUsecase {
	return &consultationUsecase{
		ConsultationRepository: consultationRepository,
		PatientRepository:      patientRepository,
		UserRepository:         userRepository,
		NotificationPublisher:  notificationPublisher,
		InternalConfig:         internalConfig,
		Log:                    logger,
		now:                    func() time.Time { return time.Now().UTC() },
	}
}

func (uc *consultationUsecase) CreateConsultation(ctx context.Context, actor *models.Session, request *requests.CreateConsultation) (*responses.Consultation, error) {
	requestID := utils.GetRequestID(ctx)

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	consultation := &models.Consultation{
		ID:        utils.GenerateID(constvars.IDPrefixConsultation),
		PatientID: patient.ID,
		DoctorID:  actor.UserID,
		Date:      uc.now().UTC().Format(constvars.TimestampFormatMillis),
		Diagnosis: models.Diagnosis{
			CID:         request.Diagnosis.CID,
			Description: request.Diagnosis.Description,
		},
		Notes: request.Notes,
		Prescription: models.Prescription{
			Medication: request.Prescription.Medication,
			Dosage:     request.Prescription.Dosage,
		},
	}
	if consultation.Diagnosis.CID == "" && consultation.Diagnosis.Description == "" {
		consultation.Diagnosis = defaultDiagnosis
	}
	if consultation.Prescription.Medication == "" && consultation.Prescription.Dosage == "" {
		consultation.Prescription = defaultPrescription
	}

	if err := uc.ConsultationRepository.CreateConsultation(ctx, consultation); err != nil {
		return nil, err
	}

	uc.Log.Info("consultationUsecase.CreateConsultation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultation.ID),
		zap.String(constvars.LoggingCIDKey, consultation.Diagnosis.CID),
	)

	uc.notifyIfRequired(ctx, consultation, patient)

	response := mapConsultationToResponse(consultation)
	return &response, nil
}

// notifyIfRequired never fails the caller; the consultation is already
// stored when it runs.
func (uc *consultationUsecase) notifyIfRequired(ctx context.Context, consultation *models.Consultation, patient *models.Patient) {
	if uc.NotificationPublisher == nil || !uc.InternalConfig.Notification.Enabled {
		return
	}
	if !IsNotifiableCID(consultation.Diagnosis.CID) {
		return
	}

	notification := &models.CompulsoryNotification{
		ConsultationID: consultation.ID,
		PatientID:      patient.ID,
		PatientName:    patient.Name,
		SusNumber:      patient.SusNumber,
		DoctorID:       consultation.DoctorID,
		CID:            consultation.Diagnosis.CID,
		Description:    consultation.Diagnosis.Description,
		ConsultedAt:    consultation.Date,
	}

	if err := uc.NotificationPublisher.PublishCompulsoryNotification(ctx, notification); err != nil {
		uc.Log.Error("consultationUsecase.notifyIfRequired failed to publish compulsory notification",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingConsultationIDKey, consultation.ID),
			zap.Error(err),
		)
	}
}

func (uc *consultationUsecase) ListConsultations(ctx context.Context) ([]responses.Consultation, error) {
	consultations, err := uc.ConsultationRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Consultation, 0, len(consultations))
	for i := range consultations {
		response = append(response, mapConsultationToResponse(&consultations[i]))
	}
	return response, nil
}

func (uc *consultationUsecase) GetConsultationByID(ctx context.Context, consultationID string) (*responses.Consultation, error) {
	consultation, err := uc.findConsultation(ctx, consultationID)
	if err != nil {
		return nil, err
	}

	response := mapConsultationToResponse(consultation)
	return &response, nil
}

func (uc *consultationUsecase) ListPrescriptions(ctx context.Context) ([]responses.PrescriptionSummary, error) {
	consultations, err := uc.ConsultationRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	patientNames := make(map[string]string)
	doctorNames := make(map[string]string)

	summaries := make([]responses.PrescriptionSummary, 0, len(consultations))
	for _, consultation := range consultations {
		patientName, ok := patientNames[consultation.PatientID]
		if !ok {
			patientName, err = uc.patientName(ctx, consultation.PatientID)
			if err != nil {
				return nil, err
			}
			patientNames[consultation.PatientID] = patientName
		}

		doctorName, ok := doctorNames[consultation.DoctorID]
		if !ok {
			doctorName, err = uc.doctorName(ctx, consultation.DoctorID)
			if err != nil {
				return nil, err
			}
			doctorNames[consultation.DoctorID] = doctorName
		}

		summaries = append(summaries, responses.PrescriptionSummary{
			ConsultationID: consultation.ID,
			Date:           consultation.Date,
			PatientName:    patientName,
			DoctorName:     doctorName,
			CID:            consultation.Diagnosis.CID,
			Medication:     consultation.Prescription.Medication,
			Dosage:         consultation.Prescription.Dosage,
		})
	}
	return summaries, nil
}

func (uc *consultationUsecase) GetPrescriptionDetail(ctx context.Context, consultationID string) (*responses.PrescriptionDetail, error) {
	consultation, err := uc.findConsultation(ctx, consultationID)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, consultation.PatientID)
	if err != nil {
		return nil, err
	}
	doctor, err := uc.UserRepository.FindByID(ctx, consultation.DoctorID)
	if err != nil {
		return nil, err
	}
	if patient == nil || doctor == nil {
		return nil, exceptions.ErrPrescriptionIncomplete(nil)
	}

	return &responses.PrescriptionDetail{
		Consultation: mapConsultationToResponse(consultation),
		Patient: responses.Patient{
			ID:        patient.ID,
			Name:      patient.Name,
			SusNumber: patient.SusNumber,
			BirthDate: patient.BirthDate,
			Age:       utils.AgeInYears(patient.BirthDate, uc.now()),
		},
		Doctor: responses.StaffMember{
			ID:        doctor.ID,
			Name:      doctor.Name,
			SusNumber: doctor.SusNumber,
			Role:      string(doctor.Role),
			RoleLabel: doctor.Role.Label(),
			Username:  doctor.Username,
		},
	}, nil
}

func (uc *consultationUsecase) findConsultation(ctx context.Context, consultationID string) (*models.Consultation, error) {
	consultation, err := uc.ConsultationRepository.FindByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, exceptions.ErrConsultationNotExist(nil)
	}
	return consultation, nil
}

func (uc *consultationUsecase) patientName(ctx context.Context, patientID string) (string, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return "", err
	}
	if patient == nil {
		return constvars.UnknownName, nil
	}
	return patient.Name, nil
}

func (uc *consultationUsecase) doctorName(ctx context.Context, doctorID string) (string, error) {
	doctor, err := uc.UserRepository.FindByID(ctx, doctorID)
	if err != nil {
		return "", err
	}
	if doctor == nil {
		return constvars.UnknownName, nil
	}
	return doctor.Name, nil
}

func mapConsultationToResponse(consultation *models.Consultation) responses.Consultation {
	return responses.Consultation{
		ID:        consultation.ID,
		PatientID: consultation.PatientID,
		DoctorID:  consultation.DoctorID,
		Date:      consultation.Date,
		Diagnosis: responses.Diagnosis{
			CID:         consultation.Diagnosis.CID,
			Description: consultation.Diagnosis.Description,
		},
		Notes: consultation.Notes,
		Prescription: responses.Prescription{
			Medication: consultation.Prescription.Medication,
			Dosage:     consultation.Prescription.Dosage,
		},
	}
}
