package auth

import (
	"context"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/app/services/core/users"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/dto/responses"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	LoginLimiter   contracts.LoginLimiter
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	checkPassword  func(password, hash string) bool
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// dummyPasswordHash is compared against when the username is unknown, so
// both failure paths pay for one bcrypt comparison.
func dummyPasswordHash() string {
	dummyHashOnce.Do(func() {
		dummyHash, _ = utils.HashPassword(uuid.NewString())
	})
	return dummyHash
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	loginLimiter contracts.LoginLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		LoginLimiter:   loginLimiter,
		InternalConfig: internalConfig,
		Log:            logger,
		checkPassword:  utils.CheckPasswordHash,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	username := strings.TrimSpace(request.Username)

	blocked, retryAfter, err := uc.LoginLimiter.IsBlocked(ctx, username)
	if err != nil {
		uc.Log.Error("authUsecase.Login error checking login limiter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUsernameKey, username),
			zap.Error(err),
		)
		return nil, err
	}
	if blocked {
		uc.Log.Warn("authUsecase.Login blocked by login limiter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUsernameKey, username),
			zap.Int(constvars.LoggingRetryAfterKey, retryAfter),
		)
		return nil, exceptions.ErrTooManyLoginAttempts(nil)
	}

	user, err := uc.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	hash := dummyPasswordHash()
	if user != nil {
		hash = user.Password
	}
	passwordMatches := uc.checkPassword(request.Password, hash)
	if user == nil || !passwordMatches {
		if err := uc.LoginLimiter.RegisterFailure(ctx, username); err != nil {
			uc.Log.Error("authUsecase.Login error registering failed attempt",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUsernameKey, username),
				zap.Error(err),
			)
		}
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	session, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, expiry)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingRoleKey, string(user.Role)),
	)

	return &responses.Login{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      users.MapUserToStaffMember(session, user),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	if err := uc.SessionService.DeleteSession(ctx, session.SessionID); err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return nil
}

// GetSessionUser fails with ErrSessionInvalid once the user behind the
// session has been removed.
func (uc *authUsecase) GetSessionUser(ctx context.Context, session *models.Session) (*responses.StaffMember, error) {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	member := users.MapUserToStaffMember(session, user)
	return &member, nil
}

func (uc *authUsecase) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	sessionID, err := utils.ParseSessionJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	session, err := uc.SessionService.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Permissions follow the stored user, not the role captured at login.
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.Log.Warn("authUsecase.Authenticate session belongs to a removed user",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
		)
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	session.Role = user.Role
	session.Username = user.Username
	return session, nil
}
