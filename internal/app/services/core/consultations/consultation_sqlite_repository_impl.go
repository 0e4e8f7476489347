package consultations

import (
	"context"
	"database/sql"
	"errors"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/queries"
	"proacolhe-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type consultationSQLiteRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewConsultationSQLiteRepository(db *sql.DB, logger *zap.Logger) contracts.ConsultationRepository {
	return &consultationSQLiteRepository{
		DB:  db,
		Log: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConsultation(row rowScanner) (*models.Consultation, error) {
	var consultation models.Consultation
	err := row.Scan(
		&consultation.ID,
		&consultation.PatientID,
		&consultation.DoctorID,
		&consultation.Date,
		&consultation.Diagnosis.CID,
		&consultation.Diagnosis.Description,
		&consultation.Notes,
		&consultation.Prescription.Medication,
		&consultation.Prescription.Dosage,
	)
	if err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationSQLiteRepository) CreateConsultation(ctx context.Context, consultation *models.Consultation) error {
	_, err := r.DB.ExecContext(ctx, queries.CreateConsultationQuery,
		consultation.ID, consultation.PatientID, consultation.DoctorID, consultation.Date,
		consultation.Diagnosis.CID, consultation.Diagnosis.Description,
		consultation.Notes,
		consultation.Prescription.Medication, consultation.Prescription.Dosage,
	)
	if err != nil {
		r.Log.Error("consultationSQLiteRepository.CreateConsultation error inserting consultation",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingConsultationIDKey, consultation.ID),
			zap.Error(err),
		)
		return exceptions.ErrSQLiteInsertData(err)
	}
	return nil
}

func (r *consultationSQLiteRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	consultation, err := scanConsultation(r.DB.QueryRowContext(ctx, queries.FindConsultationByIDQuery, consultationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, exceptions.ErrSQLiteFindData(err)
	}
	return consultation, nil
}

func (r *consultationSQLiteRepository) FindAll(ctx context.Context) ([]models.Consultation, error) {
	rows, err := r.DB.QueryContext(ctx, queries.FindAllConsultationsQuery)
	if err != nil {
		return nil, exceptions.ErrSQLiteFindData(err)
	}
	defer rows.Close()

	consultations := make([]models.Consultation, 0)
	for rows.Next() {
		consultation, err := scanConsultation(rows)
		if err != nil {
			return nil, exceptions.ErrSQLiteIterateDataset(err)
		}
		consultations = append(consultations, *consultation)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrSQLiteIterateDataset(err)
	}
	return consultations, nil
}

func (r *consultationSQLiteRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, queries.CountConsultationsQuery).Scan(&count); err != nil {
		return 0, exceptions.ErrSQLiteFindData(err)
	}
	return count, nil
}

func (r *consultationSQLiteRepository) CountByCIDPrefix(ctx context.Context, prefix string) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, queries.CountConsultationsByCIDPrefixQuery, prefix).Scan(&count); err != nil {
		return 0, exceptions.ErrSQLiteFindData(err)
	}
	return count, nil
}

func (r *consultationSQLiteRepository) DeleteAll(ctx context.Context) (int, error) {
	result, err := r.DB.ExecContext(ctx, queries.DeleteAllConsultationsQuery)
	if err != nil {
		return 0, exceptions.ErrSQLiteDeleteData(err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, exceptions.ErrSQLiteDeleteData(err)
	}
	return int(deleted), nil
}
