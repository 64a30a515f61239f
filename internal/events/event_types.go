package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAuthChanged   EventType = "auth_changed"
	EventTicketCreated EventType = "ticket_created"
	EventTicketUpdated EventType = "ticket_updated"
	EventTicketDeleted EventType = "ticket_deleted"
)

// Event represents a domain event emitted by the stores. The auth-changed
// event carries no payload; ticket events carry the affected ticket id.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// TicketEventPayload identifies the ticket an event refers to.
type TicketEventPayload struct {
	TicketID string `json:"ticket_id"`
	Title    string `json:"title,omitempty"`
}
