package middleware

import (
	"net/http"
	"strconv"

	"console/internal/access"
	"console/internal/delivery/http/response"
	"console/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// retryAfterSeconds is advertised on wait responses while the session store
// is still resolving an identity.
const retryAfterSeconds = 1

// GateMiddleware enforces access decisions on route groups. It must run after
// SessionMiddleware so the session state is already resolved.
type GateMiddleware struct {
	gate *access.Gate
}

// NewGateMiddleware is the constructor for GateMiddleware.
func NewGateMiddleware(gate *access.Gate) *GateMiddleware {
	return &GateMiddleware{gate: gate}
}

// Require gates a subtree on role membership. Callers protecting staff or
// customer subtrees include entity.RoleAdmin themselves when admins should
// pass; the gate grants no implicit superset.
func (m *GateMiddleware) Require(required ...entity.Role) echo.MiddlewareFunc {
	roles := entity.Roles(required)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := m.gate.Authorize(roles, SessionFromContext(c))

			return m.apply(c, decision, next)
		}
	}
}

// RequireAuthenticated gates a subtree on "any authenticated session".
func (m *GateMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		decision := m.gate.AuthorizeAuthenticated(SessionFromContext(c))

		return m.apply(c, decision, next)
	}
}

// apply maps a gate decision onto the HTTP exchange. The challenge is issued
// inline at the current location so the requested deep link survives it; an
// unentitled principal is sent to its role home instead.
func (m *GateMiddleware) apply(c echo.Context, decision access.Decision, next echo.HandlerFunc) error {
	switch decision.Kind {
	case access.DecisionAllow:
		return next(c)
	case access.DecisionWait:
		c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))

		return response.ServiceUnavailable(c, "SESSION_RESOLVING", "Session is still resolving, retry shortly")
	case access.DecisionChallenge:
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	case access.DecisionRedirect:
		return c.Redirect(http.StatusSeeOther, decision.Target)
	default:
		return response.InternalServerError(c, "GATE_FAILURE", "Unrecognized gate decision")
	}
}
