package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"console/internal/access"
	"console/internal/domain/entity"
	"console/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessionUsecase struct {
	state        entity.SessionState
	resolvedWith []string
}

func (s *stubSessionUsecase) Login(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return nil, nil
}

func (s *stubSessionUsecase) Refresh(context.Context, *usecase.RefreshInput) (*usecase.LoginOutput, error) {
	return nil, nil
}

func (s *stubSessionUsecase) Logout(context.Context, *entity.Principal) error {
	return nil
}

func (s *stubSessionUsecase) Resolve(_ context.Context, token string) entity.SessionState {
	s.resolvedWith = append(s.resolvedWith, token)

	return s.state
}

func testGate() *access.Gate {
	return access.NewGate(access.NewRoleHomes(
		"/admin/dashboard", "/staff/dashboard", "/customer/home", "/",
	))
}

func performGated(t *testing.T, state entity.SessionState, required ...entity.Role) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	sessionMW := NewSessionMiddleware(&stubSessionUsecase{state: state})
	gateMW := NewGateMiddleware(testGate())

	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "granted")
	}
	if len(required) == 0 {
		e.GET("/protected", ok, sessionMW.Resolve, gateMW.RequireAuthenticated)
	} else {
		e.GET("/protected", ok, sessionMW.Resolve, gateMW.Require(required...))
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func principalWithRole(role entity.Role) *entity.Principal {
	return &entity.Principal{ID: uuid.New(), DisplayName: "Test User", Role: role}
}

func TestGateMiddleware_AllowPassesThrough(t *testing.T) {
	rec := performGated(t,
		entity.AuthenticatedSession(principalWithRole(entity.RoleStaff)),
		entity.RoleStaff, entity.RoleAdmin,
	)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "granted", rec.Body.String())
}

func TestGateMiddleware_AnonymousChallengedInline(t *testing.T) {
	rec := performGated(t, entity.AnonymousSession(), entity.RoleStaff)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	// No redirect on challenge: the requested location must survive it.
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
}

func TestGateMiddleware_UnentitledRedirectedToRoleHome(t *testing.T) {
	rec := performGated(t,
		entity.AuthenticatedSession(principalWithRole(entity.RoleStaff)),
		entity.RoleAdmin,
	)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/staff/dashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestGateMiddleware_AdminRedirectedWhenNotListed(t *testing.T) {
	rec := performGated(t,
		entity.AuthenticatedSession(principalWithRole(entity.RoleAdmin)),
		entity.RoleCustomer,
	)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestGateMiddleware_ResolvingWaits(t *testing.T) {
	rec := performGated(t, entity.ResolvingSession(), entity.RoleStaff)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestGateMiddleware_WeakGateAdmitsAnyPrincipal(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleStaff, entity.RoleCustomer} {
		rec := performGated(t, entity.AuthenticatedSession(principalWithRole(role)))

		assert.Equal(t, http.StatusOK, rec.Code, "role %s", role)
	}
}

func TestSessionMiddleware_NonBearerHeaderResolvesEmptyToken(t *testing.T) {
	e := echo.New()
	stub := &stubSessionUsecase{state: entity.AnonymousSession()}
	sessionMW := NewSessionMiddleware(stub)

	e.GET("/echo-token", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, sessionMW.Resolve)

	req := httptest.NewRequest(http.MethodGet, "/echo-token", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwdw==")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, stub.resolvedWith, 1)
	assert.Empty(t, stub.resolvedWith[0])
}
