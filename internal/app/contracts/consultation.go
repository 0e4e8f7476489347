package contracts

import (
	"context"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/dto/responses"
)

type ConsultationUsecase interface {
	CreateConsultation(ctx context.Context, actor *models.Session, request *requests.CreateConsultation) (*responses.Consultation, error)
	ListConsultations(ctx context.Context) ([]responses.Consultation, error)
	GetConsultationByID(ctx context.Context, consultationID string) (*responses.Consultation, error)
	ListPrescriptions(ctx context.Context) ([]responses.PrescriptionSummary, error)
	GetPrescriptionDetail(ctx context.Context, consultationID string) (*responses.PrescriptionDetail, error)
}

type ConsultationRepository interface {
	CreateConsultation(ctx context.Context, consultation *models.Consultation) error
	FindByID(ctx context.Context, consultationID string) (*models.Consultation, error)
	// FindAll returns consultations newest first.
	FindAll(ctx context.Context) ([]models.Consultation, error)
	Count(ctx context.Context) (int, error)
	CountByCIDPrefix(ctx context.Context, prefix string) (int, error)
	DeleteAll(ctx context.Context) (deleted int, err error)
}
