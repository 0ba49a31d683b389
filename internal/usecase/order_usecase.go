package usecase

import (
	"context"

	"console/internal/domain/entity"
)

// UpdateStatusInput carries a requested status value for any of the three
// status-bearing entity kinds.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// OrderUsecase exposes the order collection to the console screens.
type OrderUsecase interface {
	// ListOrders returns all orders, oldest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// ListOrdersForCustomer returns the orders placed under the given
	// customer name, oldest first.
	ListOrdersForCustomer(ctx context.Context, customerName string) ([]*entity.Order, error)

	// UpdateOrderStatus applies a staff-initiated status transition.
	UpdateOrderStatus(ctx context.Context, id string, status string) (*entity.Order, error)
}
