package consultations

import (
	"context"
	"errors"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockConsultationRepository struct {
	mock.Mock
}

func (m *MockConsultationRepository) CreateConsultation(ctx context.Context, consultation *models.Consultation) error {
	args := m.Called(ctx, consultation)
	return args.Error(0)
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

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) DeleteByID(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
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

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) DeleteAllExcept(ctx context.Context, keepUserID string) (int, error) {
	args := m.Called(ctx, keepUserID)
	return args.Int(0), args.Error(1)
}

type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) PublishCompulsoryNotification(ctx context.Context, notification *models.CompulsoryNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type mocks struct {
	consultations *MockConsultationRepository
	patients      *MockPatientRepository
	users         *MockUserRepository
	publisher     *MockNotificationPublisher
}

var (
	fixedNow    = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	doctorActor = &models.Session{UserID: "user-doctor", Role: models.RoleDoctor}
	patient     = &models.Patient{ID: "patient-1", Name: "Maria Clara", SusNumber: "700000000000001", BirthDate: "2025-01-02"}
	doctor      = &models.User{ID: "user-doctor", Name: "Dra. Ana", SusNumber: "700000000000009", Role: models.RoleDoctor, Username: "ana"}
)

func newTestConsultationUsecase(notificationsEnabled bool) (*consultationUsecase, *mocks) {
	m := &mocks{
		consultations: new(MockConsultationRepository),
		patients:      new(MockPatientRepository),
		users:         new(MockUserRepository),
		publisher:     new(MockNotificationPublisher),
	}
	cfg := &config.InternalConfig{Notification: config.AppNotification{Enabled: notificationsEnabled}}
	uc := NewConsultationUsecase(m.consultations, m.patients, m.users, m.publisher, cfg, zap.NewNop()).(*consultationUsecase)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr.StatusCode
}

func TestIsNotifiableCID(t *testing.T) {
	cases := map[string]bool{
		"A50":   true,
		"A50.0": true,
		"a51.9": true,
		" A52 ": true,
		"A53.0": true,
		"O98.1": true,
		"O98.2": false,
		"A54":   false,
		"Z00.1": false,
		"":      false,
	}
	for cid, expected := range cases {
		assert.Equal(t, expected, IsNotifiableCID(cid), cid)
	}
}

func TestConsultationUsecase_CreateConsultation(t *testing.T) {
	ctx := context.Background()

	t.Run("Date Keeps Milliseconds", func(t *testing.T) {
		uc, m := newTestConsultationUsecase(false)
		uc.now = func() time.Time { return fixedNow.Add(250 * time.Millisecond) }
		m.patients.On("FindByID", ctx, "patient-1").Return(patient, nil)
		m.consultations.On("CreateConsultation", ctx, mock.AnythingOfType("*models.Consultation")).Return(nil)

		consultation, err := uc.CreateConsultation(ctx, doctorActor, &requests.CreateConsultation{PatientID: "patient-1"})

		require.NoError(t, err)
		assert.Equal(t, "2025-03-10T12:00:00.250Z", consultation.Date)
	})

	t.Run("Applies Defaults When Diagnosis And Prescription Are Empty", func(t *testing.T) {
		uc, m := newTestConsultationUsecase(false)
		m.patients.On("FindByID", ctx, "patient-1").Return(patient, nil)
		m.consultations.On("CreateConsultation", ctx, mock.AnythingOfType("*models.Consultation")).Return(nil)

		consultation, err := uc.CreateConsultation(ctx, doctorActor, &requests.CreateConsultation{PatientID: "patient-1"})

		require.NoError(t, err)
		assert.Contains(t, consultation.ID, constvars.IDPrefixConsultation+"-")
		assert.Equal(t, "user-doctor", consultation.DoctorID)
		assert.Equal(t, "2025-03-10T12:00:00.000Z", consultation.Date)
		assert.Equal(t, "A50", consultation.Diagnosis.CID)
		assert.Equal(t, "Sífilis Congênita", consultation.Diagnosis.Description)
		assert.Equal(t, "Penicilina G Benzatina", consultation.Prescription.Medication)
		m.publisher.AssertNotCalled(t, "PublishCompulsoryNotification", mock.Anything, mock.Anything)
	})

	t.Run("Keeps Provided Values", func(t *testing.T) {
		uc, m := newTestConsultationUsecase(false)
		m.patients.On("FindByID", ctx, "patient-1").Return(patient, nil)
		m.consultations.On("CreateConsultation", ctx, mock.AnythingOfType("*models.Consultation")).Return(nil)

		consultation, err := uc.CreateConsultation(ctx, doctorActor, &requests.CreateConsultation{
			PatientID:    "patient-1",
			Diagnosis:    requests.Diagnosis{CID: "Z20.2"},
			Notes:        "retorno",
			Prescription: requests.Prescription{Medication: "Doxiciclina"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Z20.2", consultation.Diagnosis.CID)
		assert.Equal(t, "", consultation.Diagnosis.Description)
		assert.Equal(t, "Doxiciclina", consultation.Prescription.Medication)
		assert.Equal(t, "retorno", consultation.Notes)
	})

	t.Run("Unknown Patient", func(t *testing.T) {
		uc, m := newTestConsultationUsecase(false)
		m.patients.On("FindByID", ctx, "patient-404").Return(nil, nil)

		_, err := uc.CreateConsultation(ctx, doctorActor, &requests.CreateConsultation{PatientID: "patient-404"})

		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
		m.consultations.AssertNotCalled(t, "CreateConsultation", mock.Anything, mock.Anything)
	})

	t.Run("Publishes Notification For Syphilis CID", func(t *testing.T) {
		uc, m := newTestConsultationUsecase(true)
		m.patients.On("FindByID", ctx, "patient-1").Return(patient, nil)
		m.consultations.On("CreateConsultation", ctx, mock.AnythingOfType("*models.Consultation")).Return(nil)
		m.publisher.On("PublishCompulsoryNotification", ctx, mock.MatchedBy(func(n *models.CompulsoryNotification) bool {
			return n.CID == "A51.0" && n.PatientName == "Maria Clara" && n.SusNumber == "700000000000001"
		})).Return(nil)

		_, err := uc.CreateConsultation(ctx, doctorActor, &requests.CreateConsultation{
			PatientID: "patient-1",
			Diagnosis: requests.Diagnosis{CID: "A51.0", Description: "Sífilis genital primária"},
		})

		require.NoError(t, err)
		m.publisher.AssertExpectations(t)
	})

	t.Run("Publish Failure Does Not Fail Creation", func(t *testing.T) {
		uc, m := newTestConsultationUsecase(true)
		m.patients.On("FindByID", ctx, "patient-1").Return(patient, nil)
		m.consultations.On("CreateConsultation", ctx, mock.AnythingOfType("*models.Consultation")).Return(nil)
		m.publisher.On("PublishCompulsoryNotification", ctx, mock.Anything).Return(errors.New("channel closed"))

		consultation, err := uc.CreateConsultation(ctx, doctorActor, &requests.CreateConsultation{PatientID: "patient-1"})

		require.NoError(t, err)
		assert.NotEmpty(t, consultation.ID)
	})

	t.Run("No Notification For Other CID", func(t *testing.T) {
		uc, m := newTestConsultationUsecase(true)
		m.patients.On("FindByID", ctx, "patient-1").Return(patient, nil)
		m.consultations.On("CreateConsultation", ctx, mock.AnythingOfType("*models.Consultation")).Return(nil)

		_, err := uc.CreateConsultation(ctx, doctorActor, &requests.CreateConsultation{
			PatientID: "patient-1",
			Diagnosis: requests.Diagnosis{CID: "Z00.1"},
		})

		require.NoError(t, err)
		m.publisher.AssertNotCalled(t, "PublishCompulsoryNotification", mock.Anything, mock.Anything)
	})
}

func TestConsultationUsecase_GetConsultationByID(t *testing.T) {
	ctx := context.Background()
	uc, m := newTestConsultationUsecase(false)
	m.consultations.On("FindByID", ctx, "consult-404").Return(nil, nil)

	_, err := uc.GetConsultationByID(ctx, "consult-404")

	require.Error(t, err)
	assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
}

func TestConsultationUsecase_ListPrescriptions(t *testing.T) {
	ctx := context.Background()
	uc, m := newTestConsultationUsecase(false)
	m.consultations.On("FindAll", ctx).Return([]models.Consultation{
		{ID: "consult-2", PatientID: "patient-1", DoctorID: "user-doctor", Date: "2025-03-02T10:00:00Z",
			Diagnosis: models.Diagnosis{CID: "A50"}, Prescription: models.Prescription{Medication: "Penicilina G Benzatina", Dosage: "50.000 UI/kg"}},
		{ID: "consult-1", PatientID: "patient-gone", DoctorID: "user-doctor", Date: "2025-03-01T10:00:00Z",
			Diagnosis: models.Diagnosis{CID: "A51"}},
	}, nil)
	m.patients.On("FindByID", ctx, "patient-1").Return(patient, nil)
	m.patients.On("FindByID", ctx, "patient-gone").Return(nil, nil)
	m.users.On("FindByID", ctx, "user-doctor").Return(doctor, nil).Once()

	summaries, err := uc.ListPrescriptions(ctx)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "consult-2", summaries[0].ConsultationID)
	assert.Equal(t, "Maria Clara", summaries[0].PatientName)
	assert.Equal(t, "Dra. Ana", summaries[0].DoctorName)
	assert.Equal(t, "50.000 UI/kg", summaries[0].Dosage)
	assert.Equal(t, constvars.UnknownName, summaries[1].PatientName)
	m.users.AssertExpectations(t)
}

func TestConsultationUsecase_GetPrescriptionDetail(t *testing.T) {
	ctx := context.Background()
	consultation := &models.Consultation{ID: "consult-1", PatientID: "patient-1", DoctorID: "user-doctor", Date: "2025-03-01T10:00:00Z"}

	t.Run("Complete Record", func(t *testing.T) {
		uc, m := newTestConsultationUsecase(false)
		m.consultations.On("FindByID", ctx, "consult-1").Return(consultation, nil)
		m.patients.On("FindByID", ctx, "patient-1").Return(patient, nil)
		m.users.On("FindByID", ctx, "user-doctor").Return(doctor, nil)

		detail, err := uc.GetPrescriptionDetail(ctx, "consult-1")

		require.NoError(t, err)
		assert.Equal(t, "consult-1", detail.Consultation.ID)
		assert.Equal(t, "Maria Clara", detail.Patient.Name)
		assert.Equal(t, 0, detail.Patient.Age)
		assert.Equal(t, "Médico", detail.Doctor.RoleLabel)
	})

	t.Run("Missing Doctor", func(t *testing.T) {
		uc, m := newTestConsultationUsecase(false)
		m.consultations.On("FindByID", ctx, "consult-1").Return(consultation, nil)
		m.patients.On("FindByID", ctx, "patient-1").Return(patient, nil)
		m.users.On("FindByID", ctx, "user-doctor").Return(nil, nil)

		_, err := uc.GetPrescriptionDetail(ctx, "consult-1")

		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
	})
}
