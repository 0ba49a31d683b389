package handler

import (
	"net/http"

	"console/internal/delivery/http/middleware"
	"console/internal/delivery/http/response"
	"console/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ViewHandler holds dependencies for console view handlers.
type ViewHandler struct {
	uc usecase.ViewUsecase
}

// NewViewHandler is the constructor for ViewHandler, injected by Fx.
func NewViewHandler(uc usecase.ViewUsecase) *ViewHandler {
	return &ViewHandler{uc: uc}
}

// Active returns the session's current console view.
func (h *ViewHandler) Active(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	token, err := h.uc.ActiveView(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"view": string(token)}, "Active view retrieved successfully")
}

// Select activates the given view for the session. Last write wins.
func (h *ViewHandler) Select(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	var input *usecase.SelectViewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid view input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.uc.SelectView(c.Request().Context(), principal, input.View)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"view": string(token)}, "View selected successfully")
}
