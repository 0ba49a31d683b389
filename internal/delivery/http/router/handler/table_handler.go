package handler

import (
	"net/http"
	"strconv"

	"console/internal/delivery/http/response"
	"console/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TableHandler holds dependencies for floor-plan handlers.
type TableHandler struct {
	uc usecase.TableUsecase
}

// NewTableHandler is the constructor for TableHandler, injected by Fx.
func NewTableHandler(uc usecase.TableUsecase) *TableHandler {
	return &TableHandler{uc: uc}
}

// List returns all tables ordered by id.
func (h *TableHandler) List(c echo.Context) error {
	tables, err := h.uc.ListTables(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tables, "Tables retrieved successfully")
}

// UpdateStatus applies a staff-initiated status transition to one table.
func (h *TableHandler) UpdateStatus(c echo.Context) error {
	id, err := tableID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Table id must be an integer")
	}

	var input *usecase.UpdateStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	table, err := h.uc.UpdateTableStatus(c.Request().Context(), id, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, table, "Table status updated successfully")
}

// QR renders the PNG check-in code for one table.
func (h *TableHandler) QR(c echo.Context) error {
	id, err := tableID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Table id must be an integer")
	}

	png, err := h.uc.TableQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func tableID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}
