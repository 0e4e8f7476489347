package backup

import (
	"context"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	fallbackSchedule = "@daily"
	leaderLockTTL    = 5 * time.Minute
)

// Worker uploads periodic record snapshots. The Redis leader lock keeps
// concurrent instances from uploading the same snapshot twice.
type Worker struct {
	log      *zap.Logger
	cfg      *config.InternalConfig
	locker   contracts.LockerService
	settings contracts.SettingsUsecase
	cron     *cron.Cron
	runCtx   context.Context
	cancel   context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, settingsUsecase contracts.SettingsUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, settings: settingsUsecase}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)

	c := cron.New()
	spec := w.cfg.Backup.Schedule
	if _, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) }); err != nil {
		w.log.Warn("backup.worker: invalid cron spec, falling back to @daily",
			zap.String("schedule", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackSchedule, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c

	w.log.Info("backup.worker: started", zap.String("schedule", spec))
}

// Stop waits for a running snapshot to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, constvars.BackupLeaderLockKey, leaderLockTTL)
	if err != nil {
		w.log.Warn("backup.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("backup.worker: leader lock not acquired; another instance is running")
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.WithoutCancel(ctx), constvars.BackupLeaderLockKey, token); err != nil {
			w.log.Warn("backup.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	runID := utils.GenerateRequestID()
	_ = utils.LogOperation(w.log, "backup.worker.snapshot", runID, func() error {
		objectName, err := w.settings.CreateSnapshot(context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, runID))
		if err != nil {
			return err
		}
		w.log.Info("backup.worker: snapshot stored",
			zap.String(constvars.LoggingRequestIDKey, runID),
			zap.String(constvars.LoggingObjectKey, objectName),
		)
		return nil
	})
}
