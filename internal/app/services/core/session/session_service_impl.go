package session

import (
	"context"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	now             func() time.Time
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func sessionKey(sessionID string) string {
	return constvars.SessionKeyPrefix + sessionID
}

func (svc *sessionService) ttl() time.Duration {
	return time.Duration(svc.InternalConfig.Auth.SessionExpiredTimeInHours) * time.Hour
}

func (svc *sessionService) CreateSession(ctx context.Context, user *models.User) (*models.Session, error) {
	now := svc.now()
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(svc.ttl()),
	}

	if err := svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, svc.ttl()); err != nil {
		svc.Log.Error("sessionService.CreateSession error storing session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
		return nil, err
	}
	return session, nil
}

// GetSession answers ErrSessionInvalid for unknown or expired sessions.
func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if session.IsExpired(svc.now()) {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
