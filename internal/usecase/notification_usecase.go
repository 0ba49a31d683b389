package usecase

import (
	"context"

	"console/internal/domain/service"
)

// NotificationUsecase exposes the console notification feed.
type NotificationUsecase interface {
	// RecentNotifications returns up to limit recent messages, newest first.
	RecentNotifications(ctx context.Context, limit int) ([]service.Notification, error)
}
