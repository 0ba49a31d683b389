// Package middleware contains the HTTP middleware chain: request IDs, session
// resolution, gate enforcement and error rendering.
package middleware

import (
	"strings"

	"console/internal/domain/entity"
	"console/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// keySession is the echo context key holding the resolved SessionState.
	keySession = "session"
	// keyPrincipal is the echo context key holding the resolved principal.
	// Set only for authenticated sessions.
	keyPrincipal = "principal"
)

// SessionMiddleware resolves the bearer token of every request into a
// SessionState before any gate runs. Resolution never fails: requests with a
// missing, malformed or expired token proceed as anonymous.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// Resolve extracts the bearer token and stores the resulting session state on
// the echo context.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		session := m.sessions.Resolve(c.Request().Context(), token)

		c.Set(keySession, session)
		if session.Authenticated() {
			c.Set(keyPrincipal, session.Principal)
		}

		return next(c)
	}
}

// SessionFromContext returns the session state resolved for this request.
// Requests that never passed through the middleware count as anonymous.
func SessionFromContext(c echo.Context) entity.SessionState {
	if session, ok := c.Get(keySession).(entity.SessionState); ok {
		return session
	}

	return entity.AnonymousSession()
}

// PrincipalFromContext returns the authenticated principal, or nil for
// anonymous requests.
func PrincipalFromContext(c echo.Context) *entity.Principal {
	if principal, ok := c.Get(keyPrincipal).(*entity.Principal); ok {
		return principal
	}

	return nil
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		// Not a bearer scheme; treat as absent.
		return ""
	}

	return strings.TrimSpace(token)
}
