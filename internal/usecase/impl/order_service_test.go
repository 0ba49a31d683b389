package impl

import (
	"context"
	"testing"

	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/errors"
	"console/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_ListOrders_OldestFirst(t *testing.T) {
	svc := NewOrderService(discardLogger(), store.New(testSnapshot()))

	orders, err := svc.ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-1001", orders[0].ID)
	assert.Equal(t, "ORD-1002", orders[1].ID)
}

func TestOrderService_ListOrdersForCustomer(t *testing.T) {
	svc := NewOrderService(discardLogger(), store.New(testSnapshot()))

	orders, err := svc.ListOrdersForCustomer(context.Background(), "Dana Reyes")

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-1001", orders[0].ID)

	orders, err = svc.ListOrdersForCustomer(context.Background(), "Nobody")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_UpdateOrderStatus_Success(t *testing.T) {
	svc := NewOrderService(discardLogger(), store.New(testSnapshot()))

	updated, err := svc.UpdateOrderStatus(context.Background(), "ORD-1001", "on-the-way")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderOnTheWay, updated.Status)
}

func TestOrderService_UpdateOrderStatus_UnknownID(t *testing.T) {
	svc := NewOrderService(discardLogger(), store.New(testSnapshot()))

	_, err := svc.UpdateOrderStatus(context.Background(), "ORD-9999", "ready")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	svc := NewOrderService(discardLogger(), store.New(testSnapshot()))

	_, err := svc.UpdateOrderStatus(context.Background(), "ORD-1001", "teleported")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_STATUS", appErr.ErrorCode())
}
