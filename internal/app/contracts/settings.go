package contracts

import (
	"context"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/dto/responses"
)

type SettingsUsecase interface {
	ResetSystem(ctx context.Context, actor *models.Session) (*responses.ResetSystem, error)
	CreateSnapshot(ctx context.Context) (objectName string, err error)
}
