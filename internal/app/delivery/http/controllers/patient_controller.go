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

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *PatientController) ListPatients(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.PatientUsecase.ListPatients(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "ListPatients", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, response)
}

func (ctrl *PatientController) GetPatient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.PatientUsecase.GetPatientByID(ctx, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "GetPatientByID", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, response)
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	request := new(requests.CreatePatient)
	if !decodeAndValidate(ctrl.Log, w, r, request, func() { utils.SanitizeCreatePatientRequest(request) }) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.PatientUsecase.CreatePatient(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "CreatePatient", start, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "patient_created", utils.GetRequestID(r.Context()),
		zap.String(constvars.LoggingPatientIDKey, response.ID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientSuccessMessage, response)
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	request := new(requests.UpdatePatient)
	prepare := func() {
		request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)
		utils.SanitizeUpdatePatientRequest(request)
	}
	if !decodeAndValidate(ctrl.Log, w, r, request, prepare) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.PatientUsecase.UpdatePatient(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "UpdatePatient", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessMessage, response)
}

func (ctrl *PatientController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.PatientUsecase.DeletePatient(ctx, patientID); err != nil {
		writeUsecaseError(ctrl.Log, w, r, "DeletePatient", start, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "patient_deleted", utils.GetRequestID(r.Context()),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePatientSuccessMessage, nil)
}

func (ctrl *PatientController) GetSuggestedPathway(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.PatientUsecase.GetSuggestedPathway(ctx, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "GetSuggestedPathway", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientPathwaySuccessMessage, response)
}
