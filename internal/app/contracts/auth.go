package contracts

import (
	"context"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
	GetSessionUser(ctx context.Context, session *models.Session) (*responses.StaffMember, error)
	// Authenticate resolves a bearer token into its live session.
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}
