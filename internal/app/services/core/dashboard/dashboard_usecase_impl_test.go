package dashboard

import (
	"context"
	"errors"
	"proacolhe-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *MockPatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *MockPatientRepository) DeleteByID(ctx context.Context, patientID string) error {
	return m.Called(ctx, patientID).Error(0)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockPatientRepository) DeleteAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockConsultationRepository struct {
	mock.Mock
}

func (m *MockConsultationRepository) CreateConsultation(ctx context.Context, consultation *models.Consultation) error {
	return m.Called(ctx, consultation).Error(0)
}

func (m *MockConsultationRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	args := m.Called(ctx, consultationID)
	consultation, _ := args.Get(0).(*models.Consultation)
	return consultation, args.Error(1)
}

func (m *MockConsultationRepository) FindAll(ctx context.Context) ([]models.Consultation, error) {
	args := m.Called(ctx)
	consultations, _ := args.Get(0).([]models.Consultation)
	return consultations, args.Error(1)
}

func (m *MockConsultationRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockConsultationRepository) CountByCIDPrefix(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

func (m *MockConsultationRepository) DeleteAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestDashboardUsecase_GetDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		patients := new(MockPatientRepository)
		consultations := new(MockConsultationRepository)
		patients.On("Count", ctx).Return(4, nil)
		consultations.On("Count", ctx).Return(7, nil)
		consultations.On("CountByCIDPrefix", ctx, "A50").Return(3, nil)

		dashboard, err := NewDashboardUsecase(patients, consultations, zap.NewNop()).GetDashboard(ctx)

		require.NoError(t, err)
		assert.Equal(t, 4, dashboard.TotalPatients)
		assert.Equal(t, 7, dashboard.TotalConsultations)
		assert.Equal(t, 3, dashboard.ConfirmedCases)
		require.Len(t, dashboard.Distribution, 2)
		assert.Equal(t, "Sífilis (A50)", dashboard.Distribution[0].Name)
		assert.Equal(t, 3, dashboard.Distribution[0].Value)
		assert.Equal(t, "Outros", dashboard.Distribution[1].Name)
		assert.Equal(t, 4, dashboard.Distribution[1].Value)
	})

	t.Run("Empty Database", func(t *testing.T) {
		patients := new(MockPatientRepository)
		consultations := new(MockConsultationRepository)
		patients.On("Count", ctx).Return(0, nil)
		consultations.On("Count", ctx).Return(0, nil)
		consultations.On("CountByCIDPrefix", ctx, "A50").Return(0, nil)

		dashboard, err := NewDashboardUsecase(patients, consultations, zap.NewNop()).GetDashboard(ctx)

		require.NoError(t, err)
		assert.Zero(t, dashboard.ConfirmedCases)
		assert.Zero(t, dashboard.Distribution[1].Value)
	})

	t.Run("Repository Error", func(t *testing.T) {
		patients := new(MockPatientRepository)
		consultations := new(MockConsultationRepository)
		patients.On("Count", ctx).Return(0, errors.New("boom"))

		_, err := NewDashboardUsecase(patients, consultations, zap.NewNop()).GetDashboard(ctx)

		assert.Error(t, err)
		consultations.AssertNotCalled(t, "Count", mock.Anything)
	})
}
