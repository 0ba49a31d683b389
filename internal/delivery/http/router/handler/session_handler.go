package handler

import (
	"log/slog"
	"net/http"

	"console/internal/delivery/http/middleware"
	"console/internal/delivery/http/response"
	"console/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for login and session handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles the password login request.
func (h *SessionHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Refresh handles the token refresh request.
func (h *SessionHandler) Refresh(c echo.Context) error {
	var input *usecase.RefreshInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Refresh(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout handles the logout request.
func (h *SessionHandler) Logout(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)

	if err := h.uc.Logout(c.Request().Context(), principal); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// Me returns the principal behind the current session.
func (h *SessionHandler) Me(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	return response.Success(c, http.StatusOK, principal, "Principal retrieved successfully")
}
