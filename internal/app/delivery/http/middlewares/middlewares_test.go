package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/dto/requests"
	"proacolhe-service/internal/pkg/dto/responses"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	login, _ := args.Get(0).(*responses.Login)
	return login, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockAuthUsecase) GetSessionUser(ctx context.Context, session *models.Session) (*responses.StaffMember, error) {
	args := m.Called(ctx, session)
	member, _ := args.Get(0).(*responses.StaffMember)
	return member, args.Error(1)
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func newTestMiddlewares(authUsecase *MockAuthUsecase) *Middlewares {
	return NewMiddlewares(zap.NewNop(), authUsecase, &config.InternalConfig{})
}

func TestMiddlewares_Authenticate(t *testing.T) {
	t.Run("Valid Token Stores Session", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		session := &models.Session{SessionID: "sess-1", UserID: "user-1", Role: models.RoleDoctor}
		authUsecase.On("Authenticate", mock.Anything, "token-1").Return(session, nil)

		var got *models.Session
		handler := newTestMiddlewares(authUsecase).Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = utils.GetSessionFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer token-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, session, got)
	})

	t.Run("Missing Header", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		handler := newTestMiddlewares(authUsecase).Authenticate(http.HandlerFunc(okHandler))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		authUsecase.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Session", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		authUsecase.On("Authenticate", mock.Anything, "stale").Return(nil, exceptions.ErrSessionInvalid(nil))
		handler := newTestMiddlewares(authUsecase).Authenticate(http.HandlerFunc(okHandler))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer stale")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestMiddlewares_RequireManager(t *testing.T) {
	m := newTestMiddlewares(new(MockAuthUsecase))
	handler := m.RequireManager(http.HandlerFunc(okHandler))

	cases := []struct {
		role     models.Role
		expected int
	}{
		{models.RoleManager, http.StatusOK},
		{models.RoleAdmin, http.StatusOK},
		{models.RoleDoctor, http.StatusForbidden},
		{models.RoleNurse, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			ctx := context.WithValue(context.Background(), constvars.CONTEXT_SESSION_KEY, &models.Session{UserID: "user-1", Role: tc.role})
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil).WithContext(ctx))
			assert.Equal(t, tc.expected, rr.Code)
		})
	}

	t.Run("Without Session", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRateLimiter_Limit(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(2, time.Minute, 30*time.Second, zap.NewNop())
	limiter.now = func() time.Time { return now }
	handler := limiter.Limit(http.HandlerFunc(okHandler))

	call := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1234").Code)

	rr := call("10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "31", rr.Header().Get(constvars.HeaderRetryAfter))

	assert.Equal(t, http.StatusOK, call("10.0.0.2:1234").Code, "other clients are not affected")

	now = now.Add(10 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1234").Code, "still blocked")

	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1234").Code, "block expired and bucket refilled")
}

func TestMiddlewares_RequestID(t *testing.T) {
	m := newTestMiddlewares(new(MockAuthUsecase))

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-id")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "client-id", seen)
	assert.Equal(t, "client-id", rr.Header().Get(constvars.HeaderXRequestID))

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, seen, constvars.REQUEST_ID_PREFIX)
}

func TestMiddlewares_ErrorHandlerRecovers(t *testing.T) {
	m := newTestMiddlewares(new(MockAuthUsecase))
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
