package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/persistence"
)

// UserRepository persists the registry of registered accounts.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Save(ctx context.Context, users []domain.User) error
}

type userRepository struct {
	store persistence.Store
}

// NewUserRepository returns a Store-backed implementation.
func NewUserRepository(store persistence.Store) UserRepository {
	return &userRepository{store: store}
}

// List returns the full registry, empty when nothing has been stored yet.
func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	raw, err := r.store.Get(ctx, UsersKey)
	if errors.Is(err, persistence.ErrKeyNotFound) {
		return []domain.User{}, nil
	}
	if err != nil {
		return nil, err
	}
	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("parse user registry: %w", err)
	}
	return users, nil
}

func (r *userRepository) Save(ctx context.Context, users []domain.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode user registry: %w", err)
	}
	return r.store.Set(ctx, UsersKey, raw)
}
