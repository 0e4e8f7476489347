package backup

import (
	"context"
	"errors"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

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

type MockSettingsUsecase struct {
	mock.Mock
}

func (m *MockSettingsUsecase) ResetSystem(ctx context.Context, actor *models.Session) (*responses.ResetSystem, error) {
	args := m.Called(ctx, actor)
	result, _ := args.Get(0).(*responses.ResetSystem)
	return result, args.Error(1)
}

func (m *MockSettingsUsecase) CreateSnapshot(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func newTestWorker(schedule string) (*Worker, *MockLockerService, *MockSettingsUsecase) {
	locker := new(MockLockerService)
	settings := new(MockSettingsUsecase)
	cfg := &config.InternalConfig{Backup: config.AppBackup{Enabled: true, Schedule: schedule}}
	return NewWorker(zap.NewNop(), cfg, locker, settings), locker, settings
}

func TestWorker_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("Leader Takes Snapshot", func(t *testing.T) {
		w, locker, settings := newTestWorker("@hourly")
		locker.On("TryLock", ctx, constvars.BackupLeaderLockKey, leaderLockTTL).Return(true, "lock-1", nil)
		locker.On("Unlock", mock.Anything, constvars.BackupLeaderLockKey, "lock-1").Return(nil)
		settings.On("CreateSnapshot", mock.Anything).Return("snapshots/proacolhe-20250310T120000Z.json", nil)

		w.runOnce(ctx)

		locker.AssertExpectations(t)
		settings.AssertExpectations(t)
	})

	t.Run("Other Instance Holds Lock", func(t *testing.T) {
		w, locker, settings := newTestWorker("@hourly")
		locker.On("TryLock", ctx, constvars.BackupLeaderLockKey, leaderLockTTL).Return(false, "", nil)

		w.runOnce(ctx)

		settings.AssertNotCalled(t, "CreateSnapshot", mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lock Error", func(t *testing.T) {
		w, locker, settings := newTestWorker("@hourly")
		locker.On("TryLock", ctx, constvars.BackupLeaderLockKey, leaderLockTTL).Return(false, "", errors.New("redis down"))

		w.runOnce(ctx)

		settings.AssertNotCalled(t, "CreateSnapshot", mock.Anything)
	})

	t.Run("Snapshot Failure Still Releases Lock", func(t *testing.T) {
		w, locker, settings := newTestWorker("@hourly")
		locker.On("TryLock", ctx, constvars.BackupLeaderLockKey, leaderLockTTL).Return(true, "lock-1", nil)
		locker.On("Unlock", mock.Anything, constvars.BackupLeaderLockKey, "lock-1").Return(nil)
		settings.On("CreateSnapshot", mock.Anything).Return("", errors.New("minio down"))

		w.runOnce(ctx)

		locker.AssertExpectations(t)
	})
}

func TestWorker_StartStop(t *testing.T) {
	t.Run("Valid Schedule", func(t *testing.T) {
		w, _, _ := newTestWorker("@every 1h")
		w.Start(context.Background())

		assert.Len(t, w.cron.Entries(), 1)
		w.Stop()
	})

	t.Run("Invalid Schedule Falls Back", func(t *testing.T) {
		w, _, _ := newTestWorker("not a cron spec")
		w.Start(context.Background())

		assert.Len(t, w.cron.Entries(), 1)
		w.Stop()
	})
}
