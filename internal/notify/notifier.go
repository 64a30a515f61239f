// Package notify surfaces user-facing notifications for store events.
// Presentation stays out of the stores: they publish events, this package
// renders them.
package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/ticketapp/internal/events"
)

// Notifier subscribes to store events and emits user-facing messages.
type Notifier struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	tokens     []subscription
}

type subscription struct {
	eventType events.EventType
	token     string
}

// NewNotifier creates the notifier.
func NewNotifier(dispatcher events.Dispatcher, logger *zap.Logger) *Notifier {
	return &Notifier{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to the store events.
func (n *Notifier) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.subscribe(events.EventAuthChanged, n.handleAuthChanged)
	n.subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.subscribe(events.EventTicketUpdated, n.handleTicketUpdated)
	n.subscribe(events.EventTicketDeleted, n.handleTicketDeleted)
}

// Detach removes every registered handler.
func (n *Notifier) Detach() {
	if n.dispatcher == nil {
		return
	}
	for _, sub := range n.tokens {
		n.dispatcher.Unsubscribe(sub.eventType, sub.token)
	}
	n.tokens = nil
}

func (n *Notifier) subscribe(eventType events.EventType, handler events.EventHandler) {
	token := n.dispatcher.Subscribe(eventType, handler)
	n.tokens = append(n.tokens, subscription{eventType: eventType, token: token})
}

func (n *Notifier) handleAuthChanged(_ context.Context, event events.Event) error {
	n.logger.Info("AuthChanged", zap.Time("at", event.Timestamp))
	return nil
}

func (n *Notifier) handleTicketCreated(_ context.Context, event events.Event) error {
	n.logger.Info("Ticket created successfully!", zap.Any("payload", event.Payload))
	return nil
}

func (n *Notifier) handleTicketUpdated(_ context.Context, event events.Event) error {
	n.logger.Info("Ticket updated successfully!", zap.Any("payload", event.Payload))
	return nil
}

func (n *Notifier) handleTicketDeleted(_ context.Context, event events.Event) error {
	n.logger.Info("Ticket deleted successfully!", zap.Any("payload", event.Payload))
	return nil
}
