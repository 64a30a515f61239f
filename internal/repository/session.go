package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/persistence"
)

// SessionRepository persists the current-session record.
type SessionRepository interface {
	Get(ctx context.Context) (*domain.Session, error)
	Set(ctx context.Context, session *domain.Session) error
	Clear(ctx context.Context) error
	Present(ctx context.Context) (bool, error)
}

type sessionRepository struct {
	store persistence.Store
}

// NewSessionRepository returns a Store-backed implementation.
func NewSessionRepository(store persistence.Store) SessionRepository {
	return &sessionRepository{store: store}
}

// Get returns the persisted session, or persistence.ErrKeyNotFound when no
// session is stored. A stored but unparseable record is an error.
func (r *sessionRepository) Get(ctx context.Context) (*domain.Session, error) {
	raw, err := r.store.Get(ctx, SessionKey)
	if err != nil {
		return nil, err
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("parse session record: %w", err)
	}
	return &session, nil
}

func (r *sessionRepository) Set(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	return r.store.Set(ctx, SessionKey, raw)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, SessionKey)
}

// Present checks for the session key without parsing its value. The
// navigation guard only cares about presence.
func (r *sessionRepository) Present(ctx context.Context) (bool, error) {
	if _, err := r.store.Get(ctx, SessionKey); err != nil {
		if errors.Is(err, persistence.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
