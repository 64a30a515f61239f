package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/persistence"
)

// TicketRepository persists the ticket collection as one ordered sequence.
type TicketRepository interface {
	// Load returns the stored collection. Absence is reported as
	// persistence.ErrKeyNotFound so the caller can decide to seed.
	Load(ctx context.Context) ([]domain.Ticket, error)
	Save(ctx context.Context, tickets []domain.Ticket) error
}

type ticketRepository struct {
	store persistence.Store
}

// NewTicketRepository returns a Store-backed implementation.
func NewTicketRepository(store persistence.Store) TicketRepository {
	return &ticketRepository{store: store}
}

func (r *ticketRepository) Load(ctx context.Context) ([]domain.Ticket, error) {
	raw, err := r.store.Get(ctx, TicketsKey)
	if err != nil {
		return nil, err
	}
	var tickets []domain.Ticket
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return nil, fmt.Errorf("parse ticket collection: %w", err)
	}
	return tickets, nil
}

func (r *ticketRepository) Save(ctx context.Context, tickets []domain.Ticket) error {
	raw, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("encode ticket collection: %w", err)
	}
	return r.store.Set(ctx, TicketsKey, raw)
}
