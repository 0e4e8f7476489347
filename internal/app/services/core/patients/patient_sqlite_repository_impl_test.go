package patients

import (
	"context"
	"database/sql"
	"path/filepath"
	"proacolhe-service/internal/app/drivers/database"
	"proacolhe-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "proacolhe.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = database.RunMigrations(db)
	require.NoError(t, err)
	return db
}

func TestPatientSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPatientSQLiteRepository(newTestDB(t), zap.NewNop())

	for _, p := range []models.Patient{
		{ID: "patient-1", Name: "Maria Clara", SusNumber: "700000000000001", BirthDate: "2025-01-02"},
		{ID: "patient-2", Name: "João Pedro", SusNumber: "700000000000002", BirthDate: "1990-05-15"},
	} {
		patient := p
		patient.SetCreatedAtUpdatedAt()
		require.NoError(t, repo.CreatePatient(ctx, &patient))
	}

	t.Run("Find By ID", func(t *testing.T) {
		patient, err := repo.FindByID(ctx, "patient-1")
		require.NoError(t, err)
		require.NotNil(t, patient)
		assert.Equal(t, "Maria Clara", patient.Name)
		assert.Equal(t, "2025-01-02", patient.BirthDate)
	})

	t.Run("Missing Patient Returns Nil", func(t *testing.T) {
		patient, err := repo.FindByID(ctx, "patient-404")
		assert.NoError(t, err)
		assert.Nil(t, patient)
	})

	t.Run("Find All Ordered By Name", func(t *testing.T) {
		patients, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, patients, 2)
		assert.Equal(t, "patient-2", patients[0].ID)
		assert.Equal(t, "patient-1", patients[1].ID)
	})

	t.Run("Update", func(t *testing.T) {
		patient, err := repo.FindByID(ctx, "patient-2")
		require.NoError(t, err)
		patient.SusNumber = "700000000000099"
		patient.SetUpdatedAt()
		require.NoError(t, repo.UpdatePatient(ctx, patient))

		updated, err := repo.FindByID(ctx, "patient-2")
		require.NoError(t, err)
		assert.Equal(t, "700000000000099", updated.SusNumber)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteByID(ctx, "patient-1"))
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Delete All", func(t *testing.T) {
		deleted, err := repo.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)
	})
}
