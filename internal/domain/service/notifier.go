package service

import (
	"context"
	"time"
)

// Notification is one user-facing message produced by a status transition.
type Notification struct {
	Message string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
}

// Notifier is the sink that receives one message per successful status
// transition. Implementations decide presentation (log line, console feed);
// the transition engine only hands over the message.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// NotificationFeed exposes recently emitted notifications so console screens
// can poll them.
type NotificationFeed interface {
	// Recent returns up to limit notifications, newest first.
	Recent(limit int) []Notification
}
