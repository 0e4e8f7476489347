package session

import (
	"context"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/models"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestSessionService(repo *MockRedisRepository) *sessionService {
	cfg := &config.InternalConfig{Auth: config.AppAuth{SessionExpiredTimeInHours: 12}}
	svc := NewSessionService(repo, cfg, zap.NewNop()).(*sessionService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestSessionService_CreateSession(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRedisRepository)
	repo.On("Set", ctx, mock.MatchedBy(func(key string) bool { return len(key) > len("session:") }),
		mock.AnythingOfType("*models.Session"), 12*time.Hour).Return(nil)

	session, err := newTestSessionService(repo).CreateSession(ctx, &models.User{ID: "user-1", Username: "gerente", Role: models.RoleManager})

	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, models.RoleManager, session.Role)
	assert.Equal(t, fixedNow.Add(12*time.Hour), session.ExpiresAt)
	repo.AssertExpectations(t)
}

func TestSessionService_GetSession(t *testing.T) {
	ctx := context.Background()

	stored := func(expiresAt time.Time) string {
		raw, err := json.Marshal(&models.Session{SessionID: "abc", UserID: "user-1", Role: models.RoleDoctor, ExpiresAt: expiresAt})
		require.NoError(t, err)
		return string(raw)
	}

	t.Run("Live Session", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, "session:abc").Return(stored(fixedNow.Add(time.Hour)), nil)

		session, err := newTestSessionService(repo).GetSession(ctx, "abc")

		require.NoError(t, err)
		assert.Equal(t, "user-1", session.UserID)
		assert.Equal(t, models.RoleDoctor, session.Role)
	})

	t.Run("Unknown Session", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, "session:abc").Return("", nil)

		_, err := newTestSessionService(repo).GetSession(ctx, "abc")
		assert.Error(t, err)
	})

	t.Run("Expired Session", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, "session:abc").Return(stored(fixedNow.Add(-time.Minute)), nil)

		_, err := newTestSessionService(repo).GetSession(ctx, "abc")
		assert.Error(t, err)
	})
}

func TestSessionService_DeleteSession(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRedisRepository)
	repo.On("Delete", ctx, "session:abc").Return(nil)

	require.NoError(t, newTestSessionService(repo).DeleteSession(ctx, "abc"))
	repo.AssertExpectations(t)
}
