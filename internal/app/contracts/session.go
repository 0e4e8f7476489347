package contracts

import (
	"context"
	"proacolhe-service/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, user *models.User) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
