package middlewares

import (
	"context"
	"net/http"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
}

// Authenticate resolves the bearer token into a session and stores it in
// the request context under constvars.CONTEXT_SESSION_KEY.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		session, err := m.AuthUsecase.Authenticate(r.Context(), token)
		if err != nil {
			m.Log.Debug("Middlewares.Authenticate rejected token",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireManager must run after Authenticate.
func (m *Middlewares) RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := utils.GetSessionFromContext(r.Context())
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		if !session.Role.HasManagerPrivileges() {
			utils.LogSecurityEvent(m.Log, "manager_route_denied", utils.GetRequestID(r.Context()), "low",
				zap.String(constvars.LoggingUserIDKey, session.UserID),
				zap.String(constvars.LoggingRoleKey, string(session.Role)),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrActionForbidden(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
