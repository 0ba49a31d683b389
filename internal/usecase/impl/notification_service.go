package impl

import (
	"context"

	"console/internal/domain/service"
	"console/internal/usecase"
)

const defaultFeedLimit = 20

type notificationService struct {
	feed service.NotificationFeed
}

// NewNotificationService creates the notification feed service instance.
func NewNotificationService(feed service.NotificationFeed) usecase.NotificationUsecase {
	return &notificationService{feed: feed}
}

// RecentNotifications returns up to limit recent messages, newest first.
func (s *notificationService) RecentNotifications(ctx context.Context, limit int) ([]service.Notification, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}

	return s.feed.Recent(limit), nil
}
