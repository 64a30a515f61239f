package events

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher allows event publication and subscription. Subscribe returns a
// token that Unsubscribe accepts, so consumers can detach again instead of
// listening for the lifetime of the process.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler) string
	Unsubscribe(eventType EventType, token string)
}

type subscription struct {
	token   string
	handler EventHandler
}

// inMemoryDispatcher is a simple synchronous dispatcher.
type inMemoryDispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]subscription
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Publish synchronously invokes handlers for the given event.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	subs := append([]subscription{}, d.listeners[event.Type]...)
	d.mu.RUnlock()

	for _, sub := range subs {
		// a failing handler must not starve the remaining subscribers
		_ = sub.handler(ctx, event)
	}
	return nil
}

// Subscribe registers a handler for the given event type and returns its token.
func (d *inMemoryDispatcher) Subscribe(eventType EventType, handler EventHandler) string {
	token := uuid.NewString()
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], subscription{token: token, handler: handler})
	return token
}

// Unsubscribe removes the handler registered under the token, if still present.
func (d *inMemoryDispatcher) Unsubscribe(eventType EventType, token string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	subs := d.listeners[eventType]
	for i, sub := range subs {
		if sub.token == token {
			d.listeners[eventType] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}
