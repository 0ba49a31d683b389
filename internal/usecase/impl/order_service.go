package impl

import (
	"context"
	"log/slog"

	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/errors"
	"console/internal/store"
	"console/internal/usecase"
)

type orderService struct {
	logger *slog.Logger
	store  *store.Store
}

// NewOrderService creates the order service instance.
func NewOrderService(logger *slog.Logger, st *store.Store) usecase.OrderUsecase {
	return &orderService{logger: logger, store: st}
}

// ListOrders returns all orders, oldest first.
func (s *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return s.store.Orders(), nil
}

// ListOrdersForCustomer returns the orders placed under the given customer name.
func (s *orderService) ListOrdersForCustomer(ctx context.Context, customerName string) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, order := range s.store.Orders() {
		if order.CustomerName == customerName {
			orders = append(orders, order)
		}
	}

	return orders, nil
}

// UpdateOrderStatus applies a staff-initiated status transition.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, status string) (*entity.Order, error) {
	updated, err := s.store.TransitionOrder(id, entity.OrderStatus(status))
	if err != nil {
		return nil, mapStoreError(err, domainerrors.ErrOrderNotFound)
	}

	s.logger.Info("order status updated",
		slog.String("order", id),
		slog.String("status", status),
	)

	return updated, nil
}

// mapStoreError translates store sentinels into application errors, keeping
// the original message as detail.
func mapStoreError(err error, notFound *domainerrors.BaseError) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return notFound.WithDetails(err.Error())
	case errors.Is(err, store.ErrInvalidStatus):
		return domainerrors.ErrInvalidStatus.WithDetails(err.Error())
	default:
		return errors.WithStack(err)
	}
}
