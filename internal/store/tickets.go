package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/events"
	"github.com/spec-kit/ticketapp/internal/observability"
	"github.com/spec-kit/ticketapp/internal/persistence"
	"github.com/spec-kit/ticketapp/internal/repository"
	"github.com/spec-kit/ticketapp/pkg/util"
)

// TicketStore owns the in-memory ticket collection. Insertion order is
// significant and preserved across persist/reload cycles.
type TicketStore struct {
	mu      sync.RWMutex
	tickets []domain.Ticket
	loading bool

	repo       repository.TicketRepository
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// TicketDependencies bundles collaborator requirements for the ticket store.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// NewTicketStore constructs the store with an empty collection.
func NewTicketStore(deps TicketDependencies) *TicketStore {
	return &TicketStore{
		repo:       deps.TicketRepo,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
		now:        time.Now,
	}
}

// Tickets returns a copy of the collection in insertion order.
func (s *TicketStore) Tickets() []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Ticket{}, s.tickets...)
}

// Loading reports whether a LoadTickets call is in flight.
func (s *TicketStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LoadTickets reads the persisted collection, seeding the illustrative
// dataset on first run. A read or parse failure surfaces the user-facing
// message and leaves the in-memory collection unchanged.
func (s *TicketStore) LoadTickets(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)
	s.metrics.RecordOperation("load_tickets")

	tickets, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, persistence.ErrKeyNotFound) {
			seed := sampleTickets(s.now())
			s.setTickets(seed)
			if err := s.repo.Save(ctx, seed); err != nil {
				s.logger.Error("error persisting seed tickets", zap.Error(err))
				s.metrics.RecordError("load_tickets", "STORAGE_FAILURE")
				return util.NewStorageFailure("Failed to load tickets", err)
			}
			return nil
		}
		s.logger.Error("error loading tickets", zap.Error(err))
		s.metrics.RecordError("load_tickets", "STORAGE_FAILURE")
		return util.NewStorageFailure("Failed to load tickets", err)
	}

	s.setTickets(tickets)
	return nil
}

// SaveTickets persists the full collection, then replaces the in-memory
// state. On failure the in-memory collection is left as it was.
func (s *TicketStore) SaveTickets(ctx context.Context, tickets []domain.Ticket) error {
	s.metrics.RecordOperation("save_tickets")
	if err := s.repo.Save(ctx, tickets); err != nil {
		s.logger.Error("error saving tickets", zap.Error(err))
		s.metrics.RecordError("save_tickets", "STORAGE_FAILURE")
		return util.NewStorageFailure("Failed to save tickets", err)
	}
	s.setTickets(tickets)
	return nil
}

// CreateTicket builds a full record from create-shaped data, appends it to
// the collection, and persists. The new record is returned.
func (s *TicketStore) CreateTicket(ctx context.Context, input domain.CreateTicket) (*domain.Ticket, error) {
	s.metrics.RecordOperation("create_ticket")
	now := s.now()
	ticket := domain.Ticket{
		ID:          domain.NewID(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		Assignee:    input.Assignee,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	next := append(s.Tickets(), ticket)
	if err := s.SaveTickets(ctx, next); err != nil {
		return nil, err
	}
	s.publishTicketEvent(ctx, events.EventTicketCreated, ticket.ID, ticket.Title)
	return &ticket, nil
}

// UpdateTicket merges the partial data into the matching record, stamping a
// fresh updated timestamp, and persists the collection. It returns nil when
// no record matched; the collection is persisted either way.
func (s *TicketStore) UpdateTicket(ctx context.Context, id string, input domain.UpdateTicket) (*domain.Ticket, error) {
	s.metrics.RecordOperation("update_ticket")
	next := s.Tickets()

	var updated *domain.Ticket
	for i := range next {
		if next[i].ID != id {
			continue
		}
		applyUpdate(&next[i], input)
		next[i].UpdatedAt = s.now()
		updated = &next[i]
		break
	}

	if err := s.SaveTickets(ctx, next); err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	s.publishTicketEvent(ctx, events.EventTicketUpdated, updated.ID, updated.Title)
	ticket := *updated
	return &ticket, nil
}

// DeleteTicket removes the matching record and persists. Deleting an absent
// id is an idempotent success.
func (s *TicketStore) DeleteTicket(ctx context.Context, id string) error {
	s.metrics.RecordOperation("delete_ticket")
	current := s.Tickets()
	next := make([]domain.Ticket, 0, len(current))
	removed := false
	for _, ticket := range current {
		if ticket.ID == id {
			removed = true
			continue
		}
		next = append(next, ticket)
	}

	if err := s.SaveTickets(ctx, next); err != nil {
		return err
	}
	if removed {
		s.publishTicketEvent(ctx, events.EventTicketDeleted, id, "")
	}
	return nil
}

// GetTicketByID is a pure in-memory lookup.
func (s *TicketStore) GetTicketByID(id string) (*domain.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			ticket := s.tickets[i]
			return &ticket, true
		}
	}
	return nil, false
}

// GetTicketsByStatus returns the tickets currently in the given status, in
// insertion order.
func (s *TicketStore) GetTicketsByStatus(status domain.TicketStatus) []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []domain.Ticket{}
	for _, ticket := range s.tickets {
		if ticket.Status == status {
			result = append(result, ticket)
		}
	}
	return result
}

// GetTicketStats aggregates total and per-status counts.
func (s *TicketStore) GetTicketStats() domain.TicketStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := domain.TicketStats{Total: len(s.tickets)}
	for _, ticket := range s.tickets {
		switch ticket.Status {
		case domain.TicketStatusOpen:
			stats.Open++
		case domain.TicketStatusInProgress:
			stats.InProgress++
		case domain.TicketStatusClosed:
			stats.Closed++
		}
	}
	return stats
}

func applyUpdate(ticket *domain.Ticket, input domain.UpdateTicket) {
	if input.Title != nil {
		ticket.Title = *input.Title
	}
	if input.Description != nil {
		ticket.Description = *input.Description
	}
	if input.Status != nil {
		ticket.Status = *input.Status
	}
	if input.Priority != nil {
		ticket.Priority = *input.Priority
	}
	if input.Assignee != nil {
		ticket.Assignee = *input.Assignee
	}
}

func (s *TicketStore) setTickets(tickets []domain.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets = tickets
}

func (s *TicketStore) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *TicketStore) publishTicketEvent(ctx context.Context, eventType events.EventType, ticketID, title string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: s.now(),
		Payload:   events.TicketEventPayload{TicketID: ticketID, Title: title},
	})
}

// sampleTickets is the first-run dataset: five tickets covering every status
// and several priorities, with timestamps staggered relative to now.
func sampleTickets(now time.Time) []domain.Ticket {
	return []domain.Ticket{
		{
			ID:          "1",
			Title:       "Payment processing issue",
			Description: "Customer unable to complete payment for event tickets",
			Status:      domain.TicketStatusClosed,
			Priority:    domain.TicketPriorityHigh,
			Assignee:    "John Doe",
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-time.Hour),
		},
		{
			ID:          "2",
			Title:       "Event cancellation request",
			Description: "Customer requesting refund due to event cancellation",
			Status:      domain.TicketStatusInProgress,
			Priority:    domain.TicketPriorityMedium,
			Assignee:    "Jane Smith",
			CreatedAt:   now.Add(-2 * time.Hour),
			UpdatedAt:   now.Add(-30 * time.Minute),
		},
		{
			ID:          "3",
			Title:       "Website loading issues",
			Description: "Users reporting slow loading times on event pages",
			Status:      domain.TicketStatusOpen,
			Priority:    domain.TicketPriorityUrgent,
			Assignee:    "Mike Johnson",
			CreatedAt:   now.Add(-4 * time.Hour),
			UpdatedAt:   now.Add(-4 * time.Hour),
		},
		{
			ID:          "4",
			Title:       "Email notification not working",
			Description: "Ticket confirmation emails not being sent to customers",
			Status:      domain.TicketStatusOpen,
			Priority:    domain.TicketPriorityHigh,
			Assignee:    "Sarah Wilson",
			CreatedAt:   now.Add(-6 * time.Hour),
			UpdatedAt:   now.Add(-6 * time.Hour),
		},
		{
			ID:          "5",
			Title:       "Mobile app login issues",
			Description: "Users unable to login through mobile application",
			Status:      domain.TicketStatusClosed,
			Priority:    domain.TicketPriorityMedium,
			Assignee:    "Tom Brown",
			CreatedAt:   now.Add(-8 * time.Hour),
			UpdatedAt:   now.Add(-2 * time.Hour),
		},
	}
}
