package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/utils"
)

// Authenticate requires a valid bearer token backed by a live session.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.resolveSession(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate attaches session data when a valid token is sent
// and lets anonymous requests through untouched.
func (m *Middlewares) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(constvars.HeaderAuthorization) == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.resolveSession(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must be chained after Authenticate.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		if session.Role != constvars.RoleAdmin {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAdmin(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) resolveSession(r *http.Request) (*models.Session, error) {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if authHeader == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, exceptions.ErrTokenInvalid(nil)
	}

	sessionID, err := utils.ParseSessionJWT(tokenString, m.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	session, err := m.SessionService.GetSessionData(r.Context(), sessionID)
	if err != nil {
		return nil, err
	}
	return session, nil
}
