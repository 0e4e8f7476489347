package controllers

import (
	"context"
	"net/http"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/dto/responses"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// resetTimeout is longer than requestTimeout since a reset may upload a
// snapshot first.
const resetTimeout = time.Minute

type SettingsController struct {
	Log             *zap.Logger
	SettingsUsecase contracts.SettingsUsecase
}

func NewSettingsController(logger *zap.Logger, settingsUsecase contracts.SettingsUsecase) *SettingsController {
	return &SettingsController{
		Log:             logger,
		SettingsUsecase: settingsUsecase,
	}
}

func (ctrl *SettingsController) ResetSystem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	actor, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.ResetSystem)
	if !decodeAndValidate(ctrl.Log, w, r, request, nil) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), resetTimeout)
	defer cancel()

	response, err := ctrl.SettingsUsecase.ResetSystem(ctx, actor)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "ResetSystem", start, err)
		return
	}

	utils.LogSecurityEvent(ctrl.Log, "system_reset", utils.GetRequestID(r.Context()), "high",
		zap.String(constvars.LoggingUserIDKey, actor.UserID),
		zap.Int("removed_patients", response.RemovedPatients),
		zap.Int("removed_consultations", response.RemovedConsultations),
		zap.Int("removed_users", response.RemovedUsers),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetSystemSuccessMessage, response)
}

// CreateSnapshot uploads a backup on demand, outside the cron schedule.
func (ctrl *SettingsController) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	actor, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), resetTimeout)
	defer cancel()

	objectName, err := ctrl.SettingsUsecase.CreateSnapshot(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "CreateSnapshot", start, err)
		return
	}
	if objectName == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrBackupDisabled(nil))
		return
	}

	utils.LogSecurityEvent(ctrl.Log, "snapshot_created", utils.GetRequestID(r.Context()), "low",
		zap.String(constvars.LoggingUserIDKey, actor.UserID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SnapshotSuccessMessage, responses.Snapshot{ObjectName: objectName})
}
