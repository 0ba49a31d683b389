package handler

import (
	"net/http"

	"console/internal/delivery/http/response"
	"console/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RosterHandler holds dependencies for the admin roster handler.
type RosterHandler struct {
	uc usecase.RosterUsecase
}

// NewRosterHandler is the constructor for RosterHandler, injected by Fx.
func NewRosterHandler(uc usecase.RosterUsecase) *RosterHandler {
	return &RosterHandler{uc: uc}
}

// List returns the staff roster.
func (h *RosterHandler) List(c echo.Context) error {
	roster, err := h.uc.ListRoster(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, roster, "Roster retrieved successfully")
}
