package contracts

import (
	"context"
	"proacolhe-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context) (*responses.Dashboard, error)
}
