package impl

import (
	"context"
	"testing"
	"time"

	"console/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_RecentNotifications(t *testing.T) {
	feed := &stubFeed{notifications: []service.Notification{
		{Message: "Order ORD-1001 status updated to ready", SentAt: time.Now()},
		{Message: "Table 4 status updated to available", SentAt: time.Now()},
	}}
	svc := NewNotificationService(feed)

	notifications, err := svc.RecentNotifications(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "ORD-1001")
}

func TestNotificationService_DefaultLimit(t *testing.T) {
	feed := &stubFeed{notifications: []service.Notification{
		{Message: "Reservation RSV-201 status updated to confirmed"},
	}}
	svc := NewNotificationService(feed)

	notifications, err := svc.RecentNotifications(context.Background(), 0)

	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}
