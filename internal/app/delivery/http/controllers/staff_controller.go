package controllers

import (
	"context"
	"net/http"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StaffController struct {
	Log         *zap.Logger
	UserUsecase contracts.UserUsecase
}

func NewStaffController(logger *zap.Logger, userUsecase contracts.UserUsecase) *StaffController {
	return &StaffController{
		Log:         logger,
		UserUsecase: userUsecase,
	}
}

func (ctrl *StaffController) ListStaff(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	actor, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.UserUsecase.ListStaff(ctx, actor)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "ListStaff", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStaffSuccessMessage, response)
}

func (ctrl *StaffController) GetCreatableRoles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	actor, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.UserUsecase.GetCreatableRoles(r.Context(), actor)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "GetCreatableRoles", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCreatableRolesSuccessMessage, response)
}

func (ctrl *StaffController) CreateStaff(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	actor, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateStaff)
	if !decodeAndValidate(ctrl.Log, w, r, request, func() { utils.SanitizeCreateStaffRequest(request) }) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.UserUsecase.CreateStaff(ctx, actor, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "CreateStaff", start, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "staff_created", utils.GetRequestID(r.Context()),
		zap.String(constvars.LoggingUserIDKey, response.ID),
		zap.String(constvars.LoggingRoleKey, response.Role),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateStaffSuccessMessage, response)
}

func (ctrl *StaffController) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	actor, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateStaff)
	prepare := func() {
		request.UserID = chi.URLParam(r, constvars.URLParamUserID)
		utils.SanitizeUpdateStaffRequest(request)
	}
	if !decodeAndValidate(ctrl.Log, w, r, request, prepare) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.UserUsecase.UpdateStaff(ctx, actor, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "UpdateStaff", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateStaffSuccessMessage, response)
}

func (ctrl *StaffController) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	actor, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	userID := chi.URLParam(r, constvars.URLParamUserID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.UserUsecase.DeleteStaff(ctx, actor, userID); err != nil {
		writeUsecaseError(ctrl.Log, w, r, "DeleteStaff", start, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "staff_deleted", utils.GetRequestID(r.Context()),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteStaffSuccessMessage, nil)
}
