package patients

import (
	"context"
	"database/sql"
	"errors"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/app/drivers/database"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/queries"
	"proacolhe-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientSQLiteRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewPatientSQLiteRepository(db *sql.DB, logger *zap.Logger) contracts.PatientRepository {
	return &patientSQLiteRepository{
		DB:  db,
		Log: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(row rowScanner) (*models.Patient, error) {
	var patient models.Patient
	var createdAt, updatedAt string
	err := row.Scan(&patient.ID, &patient.Name, &patient.SusNumber, &patient.BirthDate, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	patient.CreatedAt = database.ParseSQLiteTime(createdAt)
	patient.UpdatedAt = database.ParseSQLiteTime(updatedAt)
	return &patient, nil
}

func (r *patientSQLiteRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	_, err := r.DB.ExecContext(ctx, queries.CreatePatientQuery,
		patient.ID, patient.Name, patient.SusNumber, patient.BirthDate,
		database.FormatSQLiteTime(patient.CreatedAt), database.FormatSQLiteTime(patient.UpdatedAt),
	)
	if err != nil {
		r.Log.Error("patientSQLiteRepository.CreatePatient error inserting patient",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return exceptions.ErrSQLiteInsertData(err)
	}
	return nil
}

func (r *patientSQLiteRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	_, err := r.DB.ExecContext(ctx, queries.UpdatePatientQuery,
		patient.Name, patient.SusNumber, patient.BirthDate,
		database.FormatSQLiteTime(patient.UpdatedAt), patient.ID,
	)
	if err != nil {
		r.Log.Error("patientSQLiteRepository.UpdatePatient error updating patient",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingPatientIDKey, patient.ID),
			zap.Error(err),
		)
		return exceptions.ErrSQLiteUpdateData(err)
	}
	return nil
}

func (r *patientSQLiteRepository) DeleteByID(ctx context.Context, patientID string) error {
	_, err := r.DB.ExecContext(ctx, queries.DeletePatientByIDQuery, patientID)
	if err != nil {
		return exceptions.ErrSQLiteDeleteData(err)
	}
	return nil
}

func (r *patientSQLiteRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := scanPatient(r.DB.QueryRowContext(ctx, queries.FindPatientByIDQuery, patientID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, exceptions.ErrSQLiteFindData(err)
	}
	return patient, nil
}

func (r *patientSQLiteRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	rows, err := r.DB.QueryContext(ctx, queries.FindAllPatientsQuery)
	if err != nil {
		return nil, exceptions.ErrSQLiteFindData(err)
	}
	defer rows.Close()

	patients := make([]models.Patient, 0)
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, exceptions.ErrSQLiteIterateDataset(err)
		}
		patients = append(patients, *patient)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrSQLiteIterateDataset(err)
	}
	return patients, nil
}

func (r *patientSQLiteRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, queries.CountPatientsQuery).Scan(&count); err != nil {
		return 0, exceptions.ErrSQLiteFindData(err)
	}
	return count, nil
}

func (r *patientSQLiteRepository) DeleteAll(ctx context.Context) (int, error) {
	result, err := r.DB.ExecContext(ctx, queries.DeleteAllPatientsQuery)
	if err != nil {
		return 0, exceptions.ErrSQLiteDeleteData(err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, exceptions.ErrSQLiteDeleteData(err)
	}
	return int(deleted), nil
}
