package controllers

import (
	"context"
	"net/http"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
	}
}

func (ctrl *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.DashboardUsecase.GetDashboard(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "GetDashboard", start, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, response)
}
