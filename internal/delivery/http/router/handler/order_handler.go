package handler

import (
	"net/http"

	"console/internal/delivery/http/middleware"
	"console/internal/delivery/http/response"
	"console/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List returns all orders, oldest first.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// ListOwn returns the orders placed under the logged-in customer's name.
func (h *OrderHandler) ListOwn(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	orders, err := h.uc.ListOrdersForCustomer(c.Request().Context(), principal.DisplayName)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateStatus applies a staff-initiated status transition to one order.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var input *usecase.UpdateStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), c.Param("id"), input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}
