package settings

import (
	"context"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/dto/responses"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const resetLockExpiration = 5 * time.Minute

type settingsUsecase struct {
	UserRepository         contracts.UserRepository
	PatientRepository      contracts.PatientRepository
	ConsultationRepository contracts.ConsultationRepository
	UserUsecase            contracts.UserUsecase
	Locker                 contracts.LockerService
	Storage                contracts.Storage
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
	now                    func() time.Time
}

// NewSettingsUsecase accepts a nil locker and a nil storage. The operator
// CLI runs without Redis, and snapshots are skipped without Minio.
func NewSettingsUsecase(
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	consultationRepository contracts.ConsultationRepository,
	userUsecase contracts.UserUsecase,
	locker contracts.LockerService,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SettingsUsecase {
	return &settingsUsecase{
		UserRepository:         userRepository,
		PatientRepository:      patientRepository,
		ConsultationRepository: consultationRepository,
		UserUsecase:            userUsecase,
		Locker:                 locker,
		Storage:                storage,
		InternalConfig:         internalConfig,
		Log:                    logger,
		now:                    func() time.Time { return time.Now().UTC() },
	}
}

// ResetSystem wipes every clinical record and all staff but the initial
// manager. A nil actor stands for the operator CLI.
func (uc *settingsUsecase) ResetSystem(ctx context.Context, actor *models.Session) (*responses.ResetSystem, error) {
	requestID := utils.GetRequestID(ctx)

	if actor != nil && !actor.Role.HasManagerPrivileges() {
		return nil, exceptions.ErrActionForbidden(nil)
	}

	if uc.Locker != nil {
		acquired, lockValue, err := uc.Locker.TryLock(ctx, constvars.SettingsResetLockKey, resetLockExpiration)
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, exceptions.ErrResetInProgress(nil)
		}
		defer func() {
			if err := uc.Locker.Unlock(context.WithoutCancel(ctx), constvars.SettingsResetLockKey, lockValue); err != nil {
				uc.Log.Error("settingsUsecase.ResetSystem error releasing reset lock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}
		}()
	}

	response := new(responses.ResetSystem)

	objectName, err := uc.takeSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	response.SnapshotObject = objectName

	response.RemovedConsultations, err = uc.ConsultationRepository.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}
	response.RemovedPatients, err = uc.PatientRepository.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}
	response.RemovedUsers, err = uc.UserRepository.DeleteAllExcept(ctx, constvars.InitialManagerID)
	if err != nil {
		return nil, err
	}

	response.InitialManagerSeeded, err = uc.UserUsecase.EnsureInitialManager(ctx)
	if err != nil {
		return nil, err
	}

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("removed_patients", response.RemovedPatients),
		zap.Int("removed_consultations", response.RemovedConsultations),
		zap.Int("removed_users", response.RemovedUsers),
		zap.String(constvars.LoggingObjectKey, response.SnapshotObject),
	}
	if actor != nil {
		fields = append(fields, zap.String(constvars.LoggingUserIDKey, actor.UserID))
	}
	uc.Log.Warn("settingsUsecase.ResetSystem completed", fields...)

	return response, nil
}

// CreateSnapshot uploads a snapshot of every record without touching them.
func (uc *settingsUsecase) CreateSnapshot(ctx context.Context) (string, error) {
	objectName, err := uc.takeSnapshot(ctx)
	if err != nil {
		return "", err
	}

	if objectName != "" {
		uc.Log.Info("settingsUsecase.CreateSnapshot succeeded",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingBucketKey, uc.InternalConfig.Backup.BucketName),
			zap.String(constvars.LoggingObjectKey, objectName),
		)
	}
	return objectName, nil
}

// takeSnapshot returns an empty object name when backups are disabled.
func (uc *settingsUsecase) takeSnapshot(ctx context.Context) (string, error) {
	if uc.Storage == nil || !uc.InternalConfig.Backup.Enabled {
		return "", nil
	}

	users, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		return "", err
	}
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return "", err
	}
	consultations, err := uc.ConsultationRepository.FindAll(ctx)
	if err != nil {
		return "", err
	}

	now := uc.now()
	snapshot := models.Snapshot{
		TakenAt:       now,
		Users:         users,
		Patients:      patients,
		Consultations: consultations,
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	bucketName := uc.InternalConfig.Backup.BucketName
	if err := uc.Storage.EnsureBucket(ctx, bucketName); err != nil {
		uc.Log.Error("settingsUsecase.takeSnapshot error ensuring bucket",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingBucketKey, bucketName),
			zap.Error(err),
		)
		return "", err
	}

	objectName, err := uc.Storage.UploadJSON(ctx, bucketName, utils.GenerateSnapshotObjectName(now), payload)
	if err != nil {
		uc.Log.Error("settingsUsecase.takeSnapshot error uploading snapshot",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingBucketKey, bucketName),
			zap.Error(err),
		)
		return "", err
	}
	return objectName, nil
}
