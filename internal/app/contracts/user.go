package contracts

import (
	"context"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	ListStaff(ctx context.Context, actor *models.Session) ([]responses.StaffMember, error)
	GetCreatableRoles(ctx context.Context, actor *models.Session) ([]responses.RoleOption, error)
	CreateStaff(ctx context.Context, actor *models.Session, request *requests.CreateStaff) (*responses.StaffMember, error)
	UpdateStaff(ctx context.Context, actor *models.Session, request *requests.UpdateStaff) (*responses.StaffMember, error)
	DeleteStaff(ctx context.Context, actor *models.Session, userID string) error
	EnsureInitialManager(ctx context.Context) (seeded bool, err error)
}

// UserRepository finders return nil, nil when no record matches.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteByID(ctx context.Context, userID string) error
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int, error)
	DeleteAllExcept(ctx context.Context, keepUserID string) (deleted int, err error)
}
