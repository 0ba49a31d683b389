// Package notification provides the concrete notification sink for the
// console: every message is logged and retained in a bounded in-memory feed
// that console screens can poll.
package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"console/internal/domain/service"
)

const defaultFeedCapacity = 100

// LogNotifier implements both service.Notifier and service.NotificationFeed.
type LogNotifier struct {
	logger   *slog.Logger
	capacity int

	mu     sync.Mutex
	recent []service.Notification
}

// NewLogNotifier is the constructor for LogNotifier. A non-positive capacity
// falls back to the default.
func NewLogNotifier(logger *slog.Logger, capacity int) *LogNotifier {
	if capacity <= 0 {
		capacity = defaultFeedCapacity
	}

	return &LogNotifier{logger: logger, capacity: capacity}
}

// Notify logs the message and appends it to the feed, evicting the oldest
// entry once the capacity is reached.
func (n *LogNotifier) Notify(ctx context.Context, message string) {
	n.logger.InfoContext(ctx, "notification", slog.String("message", message))

	n.mu.Lock()
	defer n.mu.Unlock()

	n.recent = append(n.recent, service.Notification{Message: message, SentAt: time.Now()})
	if len(n.recent) > n.capacity {
		n.recent = n.recent[len(n.recent)-n.capacity:]
	}
}

// Recent returns up to limit notifications, newest first.
func (n *LogNotifier) Recent(limit int) []service.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	if limit <= 0 || limit > len(n.recent) {
		limit = len(n.recent)
	}

	result := make([]service.Notification, 0, limit)
	for i := len(n.recent) - 1; i >= len(n.recent)-limit; i-- {
		result = append(result, n.recent[i])
	}

	return result
}
