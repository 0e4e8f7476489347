package dashboard

import (
	"context"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/dto/responses"
	"proacolhe-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const (
	confirmedCIDPrefix      = "A50"
	confirmedCasesLabel     = "Sífilis (A50)"
	otherConsultationsLabel = "Outros"
)

type dashboardUsecase struct {
	PatientRepository      contracts.PatientRepository
	ConsultationRepository contracts.ConsultationRepository
	Log                    *zap.Logger
}

func NewDashboardUsecase(
	patientRepository contracts.PatientRepository,
	consultationRepository contracts.ConsultationRepository,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	return &dashboardUsecase{
		PatientRepository:      patientRepository,
		ConsultationRepository: consultationRepository,
		Log:                    logger,
	}
}

func (uc *dashboardUsecase) GetDashboard(ctx context.Context) (*responses.Dashboard, error) {
	requestID := utils.GetRequestID(ctx)

	totalPatients, err := uc.PatientRepository.Count(ctx)
	if err != nil {
		uc.Log.Error("dashboardUsecase.GetDashboard error counting patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	totalConsultations, err := uc.ConsultationRepository.Count(ctx)
	if err != nil {
		uc.Log.Error("dashboardUsecase.GetDashboard error counting consultations",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	confirmed, err := uc.ConsultationRepository.CountByCIDPrefix(ctx, confirmedCIDPrefix)
	if err != nil {
		uc.Log.Error("dashboardUsecase.GetDashboard error counting confirmed cases",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.Dashboard{
		TotalPatients:      totalPatients,
		TotalConsultations: totalConsultations,
		ConfirmedCases:     confirmed,
		Distribution: []responses.DistributionItem{
			{Name: confirmedCasesLabel, Value: confirmed},
			{Name: otherConsultationsLabel, Value: totalConsultations - confirmed},
		},
	}, nil
}
