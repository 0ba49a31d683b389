// Package notify translates entity store transition events into user-facing
// notifications, keeping the transition engine free of any presentation
// concern.
package notify

import (
	"context"

	"console/internal/domain/service"
	"console/internal/store"
)

// Observer forwards one sink message per transition event.
type Observer struct {
	notifier service.Notifier
}

// NewObserver is the constructor for Observer.
func NewObserver(notifier service.Notifier) *Observer {
	return &Observer{notifier: notifier}
}

// Attach registers the observer on the given store. Events are delivered
// synchronously after each successful transition.
func (o *Observer) Attach(s *store.Store) {
	s.Observe(func(event store.Event) {
		o.notifier.Notify(context.Background(), event.Message())
	})
}
