package handler

import (
	"net/http"

	"console/internal/delivery/http/response"
	"console/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReservationHandler holds dependencies for reservation-related handlers.
type ReservationHandler struct {
	uc usecase.ReservationUsecase
}

// NewReservationHandler is the constructor for ReservationHandler, injected by Fx.
func NewReservationHandler(uc usecase.ReservationUsecase) *ReservationHandler {
	return &ReservationHandler{uc: uc}
}

// List returns all reservations ordered by id.
func (h *ReservationHandler) List(c echo.Context) error {
	reservations, err := h.uc.ListReservations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservations, "Reservations retrieved successfully")
}

// UpdateStatus applies a staff-initiated status transition to one reservation.
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	var input *usecase.UpdateStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	reservation, err := h.uc.UpdateReservationStatus(c.Request().Context(), c.Param("id"), input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservation, "Reservation status updated successfully")
}

// Reset moves a decided reservation back to pending.
func (h *ReservationHandler) Reset(c echo.Context) error {
	reservation, err := h.uc.ResetReservation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservation, "Reservation reset to pending")
}
