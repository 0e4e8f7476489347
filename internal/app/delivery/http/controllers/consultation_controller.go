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

// ConsultationController serves both consultations and the prescriptions
// derived from them.
type ConsultationController struct {
	Log                 *zap.Logger
	ConsultationUsecase contracts.ConsultationUsecase
}

func NewConsultationController(logger *zap.Logger, consultationUsecase contracts.ConsultationUsecase) *ConsultationController {
	return &ConsultationController{
		Log:                 logger,
		ConsultationUsecase: consultationUsecase,
	}
}

func (ctrl *ConsultationController) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	actor, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateConsultation)
	if !decodeAndValidate(ctrl.Log, w, r, request, func() { utils.SanitizeCreateConsultationRequest(request) }) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.ConsultationUsecase.CreateConsultation(ctx, actor, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "CreateConsultation", start, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "consultation_registered", utils.GetRequestID(r.Context()),
		zap.String(constvars.LoggingConsultationIDKey, response.ID),
		zap.String(constvars.LoggingPatientIDKey, response.PatientID),
		zap.String(constvars.LoggingCIDKey, response.Diagnosis.CID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateConsultationSuccessMessage, response)
}

func (ctrl *ConsultationController) ListConsultations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.ConsultationUsecase.ListConsultations(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "ListConsultations", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetConsultationsSuccessMessage, response)
}

func (ctrl *ConsultationController) GetConsultation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.ConsultationUsecase.GetConsultationByID(ctx, consultationID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "GetConsultationByID", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetConsultationSuccessMessage, response)
}

func (ctrl *ConsultationController) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.ConsultationUsecase.ListPrescriptions(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "ListPrescriptions", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPrescriptionsSuccessMessage, response)
}

func (ctrl *ConsultationController) GetPrescription(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.ConsultationUsecase.GetPrescriptionDetail(ctx, consultationID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "GetPrescriptionDetail", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPrescriptionSuccessMessage, response)
}
