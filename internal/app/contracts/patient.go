package contracts

import (
	"context"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context) ([]responses.Patient, error)
	GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error)
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
	GetSuggestedPathway(ctx context.Context, patientID string) (*responses.PatientPathway, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) error
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeleteByID(ctx context.Context, patientID string) error
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) (deleted int, err error)
}
