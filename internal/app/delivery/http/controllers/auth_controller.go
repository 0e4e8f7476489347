package controllers

import (
	"context"
	"net/http"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	request := new(requests.Login)
	if !decodeAndValidate(ctrl.Log, w, r, request, func() { utils.SanitizeLoginRequest(request) }) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "Login", start, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "user_logged_in", utils.GetRequestID(r.Context()),
		zap.String(constvars.LoggingUserIDKey, response.User.ID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.AuthUsecase.Logout(ctx, session); err != nil {
		writeUsecaseError(ctrl.Log, w, r, "Logout", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.AuthUsecase.GetSessionUser(ctx, session)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "GetSessionUser", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionUserSuccessMessage, response)
}
