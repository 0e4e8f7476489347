package users

import (
	"context"
	"fmt"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/dto/responses"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *userUsecase) ListStaff(ctx context.Context, actor *models.Session) ([]responses.StaffMember, error) {
	users, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	staff := make([]responses.StaffMember, 0, len(users))
	for i := range users {
		staff = append(staff, MapUserToStaffMember(actor, &users[i]))
	}
	return staff, nil
}

func (uc *userUsecase) GetCreatableRoles(ctx context.Context, actor *models.Session) ([]responses.RoleOption, error) {
	roles := CreatableRoles(actor.Role)

	options := make([]responses.RoleOption, 0, len(roles))
	for _, role := range roles {
		options = append(options, responses.RoleOption{
			Value: string(role),
			Label: role.Label(),
		})
	}
	return options, nil
}

func (uc *userUsecase) CreateStaff(ctx context.Context, actor *models.Session, request *requests.CreateStaff) (*responses.StaffMember, error) {
	requestID := utils.GetRequestID(ctx)

	if request.Password == "" {
		return nil, exceptions.ErrPasswordRequired(nil)
	}

	role := models.Role(request.Role)
	if !canAssignRole(actor.Role, role) {
		return nil, exceptions.ErrRoleNotCreatable(fmt.Errorf("%s cannot assign %s", actor.Role, role))
	}

	existingUser, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		ID:        utils.GenerateID(constvars.IDPrefixUser),
		Name:      request.Name,
		SusNumber: request.SusNumber,
		Role:      role,
		Username:  request.Username,
		Password:  hashedPassword,
	}
	user.SetCreatedAtUpdatedAt()

	if err := uc.UserRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.CreateStaff succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingRoleKey, string(user.Role)),
	)

	response := MapUserToStaffMember(actor, user)
	return &response, nil
}

func (uc *userUsecase) UpdateStaff(ctx context.Context, actor *models.Session, request *requests.UpdateStaff) (*responses.StaffMember, error) {
	requestID := utils.GetRequestID(ctx)

	user, err := uc.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if !CanEditUser(actor, user) {
		return nil, exceptions.ErrCannotEditUser(nil)
	}

	role := models.Role(request.Role)
	if role != user.Role && !canAssignRole(actor.Role, role) {
		return nil, exceptions.ErrRoleNotCreatable(fmt.Errorf("%s cannot assign %s", actor.Role, role))
	}

	if request.Username != user.Username {
		existingUser, err := uc.UserRepository.FindByUsername(ctx, request.Username)
		if err != nil {
			return nil, err
		}
		if existingUser != nil && existingUser.ID != user.ID {
			return nil, exceptions.ErrUsernameAlreadyExist(nil)
		}
	}

	if request.Password != "" {
		hashedPassword, err := utils.HashPassword(request.Password)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}
		user.Password = hashedPassword
	}

	user.Name = request.Name
	user.SusNumber = request.SusNumber
	user.Role = role
	user.Username = request.Username
	user.SetUpdatedAt()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.UpdateStaff succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)

	response := MapUserToStaffMember(actor, user)
	return &response, nil
}

func (uc *userUsecase) DeleteStaff(ctx context.Context, actor *models.Session, userID string) error {
	if userID == constvars.InitialManagerID {
		return exceptions.ErrCannotDeleteInitialManager(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	if !CanDeleteUser(actor, user) {
		return exceptions.ErrCannotDeleteUser(nil)
	}

	if err := uc.UserRepository.DeleteByID(ctx, userID); err != nil {
		return err
	}

	uc.Log.Info("userUsecase.DeleteStaff succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return nil
}

// EnsureInitialManager seeds the default manager when there are no users
// at all. It reports whether a record was written.
func (uc *userUsecase) EnsureInitialManager(ctx context.Context) (bool, error) {
	count, err := uc.UserRepository.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hashedPassword, err := utils.HashPassword(uc.InternalConfig.Clinic.InitialManagerPassword)
	if err != nil {
		return false, exceptions.ErrHashPassword(err)
	}

	manager := &models.User{
		ID:        constvars.InitialManagerID,
		Name:      constvars.InitialManagerName,
		SusNumber: constvars.InitialManagerSusNumber,
		Role:      models.RoleManager,
		Username:  constvars.InitialManagerUsername,
		Password:  hashedPassword,
	}
	manager.SetCreatedAtUpdatedAt()

	if err := uc.UserRepository.CreateUser(ctx, manager); err != nil {
		return false, err
	}

	uc.Log.Info("userUsecase.EnsureInitialManager seeded initial manager",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUsernameKey, manager.Username),
	)
	return true, nil
}

func MapUserToStaffMember(actor *models.Session, user *models.User) responses.StaffMember {
	return responses.StaffMember{
		ID:        user.ID,
		Name:      user.Name,
		SusNumber: user.SusNumber,
		Role:      string(user.Role),
		RoleLabel: user.Role.Label(),
		Username:  user.Username,
		CanEdit:   CanEditUser(actor, user),
		CanDelete: CanDeleteUser(actor, user) && user.ID != constvars.InitialManagerID,
	}
}
