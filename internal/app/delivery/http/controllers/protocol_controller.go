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

type ProtocolController struct {
	Log             *zap.Logger
	ProtocolUsecase contracts.ProtocolUsecase
}

func NewProtocolController(logger *zap.Logger, protocolUsecase contracts.ProtocolUsecase) *ProtocolController {
	return &ProtocolController{
		Log:             logger,
		ProtocolUsecase: protocolUsecase,
	}
}

func (ctrl *ProtocolController) Evaluate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	request := new(requests.EvaluateProtocol)
	if !decodeAndValidate(ctrl.Log, w, r, request, func() { utils.SanitizeEvaluateProtocolRequest(request) }) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.ProtocolUsecase.EvaluateProtocol(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "EvaluateProtocol", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EvaluateProtocolSuccessMessage, response)
}

func (ctrl *ProtocolController) Apply(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	request := new(requests.ApplyProtocol)
	if !decodeAndValidate(ctrl.Log, w, r, request, func() { utils.SanitizeApplyProtocolRequest(request) }) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.ProtocolUsecase.ApplyProtocol(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "ApplyProtocol", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ApplyProtocolSuccessMessage, response)
}

func (ctrl *ProtocolController) Reference(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProtocolReferenceSuccessMessage, ctrl.ProtocolUsecase.GetReference(r.Context()))
}
