package settings

import (
	"context"
	"errors"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/dto/responses"
	"proacolhe-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
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

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) ListStaff(ctx context.Context, actor *models.Session) ([]responses.StaffMember, error) {
	args := m.Called(ctx, actor)
	staff, _ := args.Get(0).([]responses.StaffMember)
	return staff, args.Error(1)
}

func (m *MockUserUsecase) GetCreatableRoles(ctx context.Context, actor *models.Session) ([]responses.RoleOption, error) {
	args := m.Called(ctx, actor)
	roles, _ := args.Get(0).([]responses.RoleOption)
	return roles, args.Error(1)
}

func (m *MockUserUsecase) CreateStaff(ctx context.Context, actor *models.Session, request *requests.CreateStaff) (*responses.StaffMember, error) {
	args := m.Called(ctx, actor, request)
	member, _ := args.Get(0).(*responses.StaffMember)
	return member, args.Error(1)
}

func (m *MockUserUsecase) UpdateStaff(ctx context.Context, actor *models.Session, request *requests.UpdateStaff) (*responses.StaffMember, error) {
	args := m.Called(ctx, actor, request)
	member, _ := args.Get(0).(*responses.StaffMember)
	return member, args.Error(1)
}

func (m *MockUserUsecase) DeleteStaff(ctx context.Context, actor *models.Session, userID string) error {
	return m.Called(ctx, actor, userID).Error(0)
}

func (m *MockUserUsecase) EnsureInitialManager(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) EnsureBucket(ctx context.Context, bucketName string) error {
	return m.Called(ctx, bucketName).Error(0)
}

func (m *MockStorage) UploadJSON(ctx context.Context, bucketName, objectName string, payload []byte) (string, error) {
	args := m.Called(ctx, bucketName, objectName, payload)
	return args.String(0), args.Error(1)
}

type settingsMocks struct {
	users         *MockUserRepository
	patients      *MockPatientRepository
	consultations *MockConsultationRepository
	userUsecase   *MockUserUsecase
	locker        *MockLockerService
	storage       *MockStorage
}

var (
	fixedNow     = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	managerActor = &models.Session{UserID: "user-manager", Role: models.RoleManager}
)

func newTestSettingsUsecase(backupEnabled bool) (*settingsUsecase, *settingsMocks) {
	m := &settingsMocks{
		users:         new(MockUserRepository),
		patients:      new(MockPatientRepository),
		consultations: new(MockConsultationRepository),
		userUsecase:   new(MockUserUsecase),
		locker:        new(MockLockerService),
		storage:       new(MockStorage),
	}
	cfg := &config.InternalConfig{Backup: config.AppBackup{Enabled: backupEnabled, BucketName: "proacolhe-backups"}}
	uc := NewSettingsUsecase(m.users, m.patients, m.consultations, m.userUsecase, m.locker, m.storage, cfg, zap.NewNop()).(*settingsUsecase)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func (m *settingsMocks) expectPurge(ctx context.Context) {
	m.consultations.On("DeleteAll", ctx).Return(5, nil)
	m.patients.On("DeleteAll", ctx).Return(3, nil)
	m.users.On("DeleteAllExcept", ctx, constvars.InitialManagerID).Return(2, nil)
	m.userUsecase.On("EnsureInitialManager", ctx).Return(false, nil)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr.StatusCode
}

func TestSettingsUsecase_ResetSystem(t *testing.T) {
	ctx := context.Background()

	t.Run("Purges Records Under Lock", func(t *testing.T) {
		uc, m := newTestSettingsUsecase(false)
		m.locker.On("TryLock", ctx, constvars.SettingsResetLockKey, resetLockExpiration).Return(true, "lock-1", nil)
		m.locker.On("Unlock", mock.Anything, constvars.SettingsResetLockKey, "lock-1").Return(nil)
		m.expectPurge(ctx)

		result, err := uc.ResetSystem(ctx, managerActor)

		require.NoError(t, err)
		assert.Equal(t, 3, result.RemovedPatients)
		assert.Equal(t, 5, result.RemovedConsultations)
		assert.Equal(t, 2, result.RemovedUsers)
		assert.Empty(t, result.SnapshotObject)
		m.locker.AssertExpectations(t)
		m.storage.AssertNotCalled(t, "UploadJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Uploads Snapshot Before Purging", func(t *testing.T) {
		uc, m := newTestSettingsUsecase(true)
		m.locker.On("TryLock", ctx, constvars.SettingsResetLockKey, resetLockExpiration).Return(true, "lock-1", nil)
		m.locker.On("Unlock", mock.Anything, constvars.SettingsResetLockKey, "lock-1").Return(nil)
		m.users.On("FindAll", ctx).Return([]models.User{{ID: constvars.InitialManagerID}}, nil)
		m.patients.On("FindAll", ctx).Return([]models.Patient{{ID: "patient-1"}}, nil)
		m.consultations.On("FindAll", ctx).Return([]models.Consultation{{ID: "consult-1"}}, nil)
		m.storage.On("EnsureBucket", ctx, "proacolhe-backups").Return(nil)
		m.storage.On("UploadJSON", ctx, "proacolhe-backups", "snapshots/proacolhe-20250310T120000Z.json",
			mock.MatchedBy(func(payload []byte) bool {
				var snapshot models.Snapshot
				return json.Unmarshal(payload, &snapshot) == nil && len(snapshot.Patients) == 1 && len(snapshot.Consultations) == 1
			})).Return("snapshots/proacolhe-20250310T120000Z.json", nil)
		m.expectPurge(ctx)

		result, err := uc.ResetSystem(ctx, managerActor)

		require.NoError(t, err)
		assert.Equal(t, "snapshots/proacolhe-20250310T120000Z.json", result.SnapshotObject)
		m.storage.AssertExpectations(t)
	})

	t.Run("Snapshot Failure Aborts Reset", func(t *testing.T) {
		uc, m := newTestSettingsUsecase(true)
		m.locker.On("TryLock", ctx, constvars.SettingsResetLockKey, resetLockExpiration).Return(true, "lock-1", nil)
		m.locker.On("Unlock", mock.Anything, constvars.SettingsResetLockKey, "lock-1").Return(nil)
		m.users.On("FindAll", ctx).Return([]models.User{}, nil)
		m.patients.On("FindAll", ctx).Return([]models.Patient{}, nil)
		m.consultations.On("FindAll", ctx).Return([]models.Consultation{}, nil)
		m.storage.On("EnsureBucket", ctx, "proacolhe-backups").Return(errors.New("minio down"))

		_, err := uc.ResetSystem(ctx, managerActor)

		require.Error(t, err)
		m.patients.AssertNotCalled(t, "DeleteAll", mock.Anything)
		m.locker.AssertExpectations(t)
	})

	t.Run("Reset Already Running", func(t *testing.T) {
		uc, m := newTestSettingsUsecase(false)
		m.locker.On("TryLock", ctx, constvars.SettingsResetLockKey, resetLockExpiration).Return(false, "", nil)

		_, err := uc.ResetSystem(ctx, managerActor)

		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusOf(t, err))
		m.patients.AssertNotCalled(t, "DeleteAll", mock.Anything)
	})

	t.Run("Doctor Is Forbidden", func(t *testing.T) {
		uc, m := newTestSettingsUsecase(false)

		_, err := uc.ResetSystem(ctx, &models.Session{UserID: "user-doctor", Role: models.RoleDoctor})

		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
		m.locker.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Operator Without Locker", func(t *testing.T) {
		uc, m := newTestSettingsUsecase(false)
		uc.Locker = nil
		m.expectPurge(ctx)

		result, err := uc.ResetSystem(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, 3, result.RemovedPatients)
	})
}

func TestSettingsUsecase_CreateSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("Uploads Without Purging", func(t *testing.T) {
		uc, m := newTestSettingsUsecase(true)
		m.users.On("FindAll", ctx).Return([]models.User{{ID: constvars.InitialManagerID}}, nil)
		m.patients.On("FindAll", ctx).Return([]models.Patient{}, nil)
		m.consultations.On("FindAll", ctx).Return([]models.Consultation{}, nil)
		m.storage.On("EnsureBucket", ctx, "proacolhe-backups").Return(nil)
		m.storage.On("UploadJSON", ctx, "proacolhe-backups", "snapshots/proacolhe-20250310T120000Z.json", mock.Anything).
			Return("snapshots/proacolhe-20250310T120000Z.json", nil)

		objectName, err := uc.CreateSnapshot(ctx)

		require.NoError(t, err)
		assert.Equal(t, "snapshots/proacolhe-20250310T120000Z.json", objectName)
		m.patients.AssertNotCalled(t, "DeleteAll", mock.Anything)
		m.locker.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Backups Disabled", func(t *testing.T) {
		uc, m := newTestSettingsUsecase(false)

		objectName, err := uc.CreateSnapshot(ctx)

		require.NoError(t, err)
		assert.Empty(t, objectName)
		m.users.AssertNotCalled(t, "FindAll", mock.Anything)
	})
}
